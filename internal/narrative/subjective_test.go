package narrative

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBuildDescriptor(t *testing.T) {
	tests := []struct {
		name  string
		block DescriptorBlock
		want  string
	}{
		{
			name: "unknown region",
			block: DescriptorBlock{Region: RegionNone, Descriptor1: "Sharp"},
			want: "",
		},
		{
			name:  "bare",
			block: DescriptorBlock{Region: "CS"},
			want: "The patient reports symptoms in the cervical spine. The patient describes the pain." +
				"\n\nThe patient states the overall discomfort in this area is none.",
		},
		{
			name: "full",
			block: DescriptorBlock{
				Region:           "LS",
				Descriptor1:      "Sharp",
				Descriptor2:      "Burning",
				RadicularSymptom: "Numbness",
				RadicularLoc:     "Left leg",
				Muscles:          []string{"Lumbar paraspinals", "Quadratus lumborum", "Piriformis"},
				PainScale:        "Moderate to Severe",
			},
			want: "The patient reports symptoms in the lumbar spine. " +
				"The patient describes those symptoms as sharp pain along with burning pain. " +
				"The patient complains of numbness into the left leg." +
				"\n\nThe patient indicates or points to the Lumbar paraspinals, Quadratus lumborum, and the Piriformis as the areas of tenderness." +
				"\n\nThe patient states the overall discomfort in this area is moderate to severe.",
		},
		{
			name: "two muscles no location",
			block: DescriptorBlock{
				Region:           "R_SHOULDER",
				Descriptor1:      "Achy",
				RadicularSymptom: "Tingling",
				RadicularLoc:     "(select)",
				Muscles:          []string{"Deltoid", "Rotator cuff"},
				PainScale:        "Mild",
			},
			want: "The patient reports symptoms in the right shoulder. " +
				"The patient describes those symptoms as achy pain. " +
				"The patient complains of tingling." +
				"\n\nThe patient indicates or points to the Deltoid and the Rotator cuff as the areas of tenderness." +
				"\n\nThe patient states the overall discomfort in this area is mild.",
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := BuildDescriptor(tc.block)
			assert.Equal(t, tc.want, got)
			assert.Equal(t, got, BuildDescriptor(tc.block))
		})
	}
}

func TestDescriptorSentenceKeepsPainWord(t *testing.T) {
	assert.Equal(t, "The patient describes those symptoms as pressure pain along with sharp pain.",
		descriptorSentence("Pressure pain", "Sharp"))
}

func TestLooksAuto(t *testing.T) {
	tests := []struct {
		text string
		want bool
	}{
		{"", true},
		{"   ", true},
		{"The patient reports symptoms in the cervical spine.", true},
		{"the PATIENT reports symptoms in the neck", true},
		{"Tenderness is localized to the upper trapezius.", true},
		{"Says the overall discomfort in this area is bad.", true},
		{"Patient is doing better today.", false},
	}

	for _, tc := range tests {
		assert.Equal(t, tc.want, LooksAuto(tc.text), tc.text)
	}
}
