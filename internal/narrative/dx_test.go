package narrative

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRenderDx(t *testing.T) {
	blocks := []DxBlock{
		{Label: "Cervical sprain/strain (whiplash)", ICD10: "S13.4XXA"},
		{Label: "Low back pain", ICD10: "M54.50", EditText: "Chronic low back pain"},
	}

	got := RenderDx(blocks)
	assert.Equal(t, "1. Cervical sprain/strain (whiplash) (S13.4XXA)\n2. Chronic low back pain (M54.50)\n[AUTO:DX]", got)
	assert.Equal(t, "1. Cervical sprain/strain (whiplash) (S13.4XXA)\n2. Chronic low back pain (M54.50)", StripSentinels(got))
}

func TestRenderDxEdges(t *testing.T) {
	assert.Empty(t, RenderDx(nil))
	assert.Empty(t, RenderDx([]DxBlock{{}, {EditText: "  "}}))
	assert.Equal(t, "1. Free text finding\n2. Neck pain (cervicalgia) (M54.2)\n[AUTO:DX]",
		RenderDx([]DxBlock{{EditText: "Free text finding"}, {}, {Label: "Neck pain (cervicalgia)", ICD10: "M54.2"}}))
}

func TestLookupDx(t *testing.T) {
	d, ok := LookupDx("low back pain")
	require.True(t, ok)
	assert.Equal(t, "M54.50", d.ICD10)
	assert.Equal(t, "Low back pain — M54.50", d.Display())

	other, ok := LookupDx(DxOther)
	require.True(t, ok)
	assert.Equal(t, DxOther, other.Display())

	_, ok = LookupDx("not a diagnosis")
	assert.False(t, ok)
}

func TestDxLabels(t *testing.T) {
	assert.Equal(t, []string{"Low back pain", "Neck pain"},
		DxLabels([]DxBlock{{Label: "Low back pain"}, {EditText: "low back pain"}, {Label: "Neck pain"}, {}}))
}

func TestBuildDxSupplement(t *testing.T) {
	sup := BuildDxSupplement("Guarded",
		[]ImagingRec{{Modality: "MRI", BodyPart: "Cervical Spine"}, {Modality: "(select)", BodyPart: "Knee"}, {Modality: "X-ray", BodyPart: "Right Knee"}},
		[]Referral{{ProviderType: "Orthopedist"}, {ProviderType: "(select)"}})

	assert.Equal(t, "Guarded", sup.Prognosis)
	assert.Equal(t, "Due to the patient's ongoing subjective complaints along with positive objective findings, "+
		"the patient will need to undergo imaging studies as follows: MRI of Cervical Spine and X-ray of Right Knee.", sup.Imaging)
	assert.Equal(t, "Referrals: Orthopedist.", sup.Referrals)

	assert.Equal(t, DxSupplement{}, BuildDxSupplement("(select)", nil, nil))
}
