package upload

import (
	"testing"
)

func TestDeterminePlan(t *testing.T) {
	const mib = int64(1024 * 1024)

	tests := []struct {
		name      string
		sizeBytes int64
		expected  Plan
	}{
		{
			name:      "Empty file",
			sizeBytes: 0,
			expected:  Plan{Kind: PlanSingle},
		},
		{
			name:      "Small file",
			sizeBytes: 10 * mib,
			expected:  Plan{Kind: PlanSingle},
		},
		{
			name:      "One byte below threshold",
			sizeBytes: 50*mib - 1,
			expected:  Plan{Kind: PlanSingle},
		},
		{
			name:      "Exactly at threshold",
			sizeBytes: 50 * mib,
			expected:  Plan{Kind: PlanMultipart, PartSize: 8 * mib},
		},
		{
			name:      "Large file",
			sizeBytes: 2 * 1024 * mib,
			expected:  Plan{Kind: PlanMultipart, PartSize: 8 * mib},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			plan := DeterminePlan(tt.sizeBytes, DefaultMultipartThreshold, DefaultPartSize)
			if plan != tt.expected {
				t.Errorf("DeterminePlan(%d) = %+v, expected %+v", tt.sizeBytes, plan, tt.expected)
			}
		})
	}
}

func TestDeterminePlan_CustomPolicy(t *testing.T) {
	plan := DeterminePlan(2048, 1024, 512)
	if plan.Kind != PlanMultipart || plan.PartSize != 512 {
		t.Errorf("expected multipart with part size 512, got %+v", plan)
	}

	plan = DeterminePlan(512, 1024, 512)
	if plan.Kind != PlanSingle {
		t.Errorf("expected single, got %+v", plan)
	}
}

func TestDeterminePlan_ZeroConfigFallsBackToDefaults(t *testing.T) {
	plan := DeterminePlan(100*1024*1024, 0, 0)
	if plan.Kind != PlanMultipart || plan.PartSize != DefaultPartSize {
		t.Errorf("expected default multipart plan, got %+v", plan)
	}
}
