package content

import (
	"strings"
	"testing"
)

func TestSizeGuide(t *testing.T) {
	guide := SizeGuide()

	want := []int{4, 6, 8, 10, 12, 14, 16, 20, 40}
	if len(guide) != len(want) {
		t.Fatalf("len(SizeGuide()) = %d, want %d", len(guide), len(want))
	}
	for i, size := range want {
		if guide[i].Size != size {
			t.Errorf("guide[%d].Size = %d, want %d", i, guide[i].Size, size)
		}
		if guide[i].Title == "" || guide[i].Dimensions == "" || guide[i].SuitableFor == "" {
			t.Errorf("guide[%d] has empty fields: %+v", i, guide[i])
		}
	}

	guide[0].Title = "changed"
	if SizeGuide()[0].Title == "changed" {
		t.Error("SizeGuide() exposed internal slice")
	}
}

func TestGuideFor(t *testing.T) {
	e, ok := GuideFor(40)
	if !ok || !strings.Contains(e.Title, "RORO") {
		t.Errorf("GuideFor(40) = %+v, %v", e, ok)
	}
	if _, ok := GuideFor(5); ok {
		t.Error("GuideFor(5) should not exist")
	}
}

func TestDescription(t *testing.T) {
	tests := []struct {
		size int
		want string
	}{
		{4, "Ideal for small garden cleanups and minor renovations."},
		{10, "Best for major construction or commercial projects."},
		{12, DefaultDescription},
	}
	for _, tt := range tests {
		if got := Description(tt.size); got != tt.want {
			t.Errorf("Description(%d) = %q, want %q", tt.size, got, tt.want)
		}
	}
}

func TestEstimatedBinBags(t *testing.T) {
	tests := []struct {
		size int
		want int
	}{
		{4, 40},
		{5, 50},
		{10, 100},
		{12, 120},
		{40, 400},
	}
	for _, tt := range tests {
		if got := EstimatedBinBags(tt.size); got != tt.want {
			t.Errorf("EstimatedBinBags(%d) = %d, want %d", tt.size, got, tt.want)
		}
	}
}

func TestFAQ(t *testing.T) {
	items := FAQ()
	if len(items) != 5 {
		t.Fatalf("len(FAQ()) = %d, want 5", len(items))
	}
	for i, item := range items {
		if !strings.HasSuffix(item.Question, "?") {
			t.Errorf("item %d question %q should end with ?", i, item.Question)
		}
		if item.Answer == "" {
			t.Errorf("item %d has no answer", i)
		}
	}
}

func TestSteps(t *testing.T) {
	steps := Steps()
	if len(steps) != 6 {
		t.Fatalf("len(Steps()) = %d, want 6", len(steps))
	}
	if steps[SelectSkipStep].Label != "Select Skip" {
		t.Errorf("Steps()[SelectSkipStep] = %q, want Select Skip", steps[SelectSkipStep].Label)
	}
}
