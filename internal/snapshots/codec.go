package snapshots

import (
	"context"
	"encoding/json"
	"fmt"
)

// LoadJSON decodes resource name into dest. found is false (and dest
// untouched) when the resource does not exist yet.
func LoadJSON(ctx context.Context, b Backend, name string, dest any) (found bool, err error) {
	data, err := b.Load(ctx, name)
	if err != nil {
		if IsNotFound(err) {
			return false, nil
		}
		return false, fmt.Errorf("load %s: %w", name, err)
	}
	if len(data) == 0 {
		return false, nil
	}
	if err := json.Unmarshal(data, dest); err != nil {
		return false, fmt.Errorf("decode %s: %w", name, err)
	}
	return true, nil
}

// SaveJSON encodes payload as indented JSON and replaces resource name.
func SaveJSON(ctx context.Context, b Backend, name string, payload any) error {
	data, err := json.MarshalIndent(payload, "", "  ")
	if err != nil {
		return fmt.Errorf("encode %s: %w", name, err)
	}
	if err := b.Save(ctx, name, data); err != nil {
		return fmt.Errorf("save %s: %w", name, err)
	}
	return nil
}
