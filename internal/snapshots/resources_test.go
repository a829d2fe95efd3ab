package snapshots

import "testing"

func TestTeamChartResourceLowercases(t *testing.T) {
	if got := TeamChartResource("TB"); got != "depthcharts-tb" {
		t.Fatalf("unexpected resource %q", got)
	}
	if !IsTeamChartResource("depthcharts-ne") {
		t.Fatal("expected team chart resource")
	}
	if IsTeamChartResource("depthcharts-") || IsTeamChartResource(ResourcePlayers) {
		t.Fatal("expected non team chart resources to be rejected")
	}
}
