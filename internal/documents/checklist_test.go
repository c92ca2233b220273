package documents

import (
	"testing"

	. "server/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func record(docType, status string) *DocumentRecord {
	return &DocumentRecord{
		DocumentType: docType,
		Status:       status,
		FileName:     docType + ".pdf",
		FileURL:      "data/uploads/docs/" + docType + ".pdf",
	}
}

func TestCatalog_StableOrderAndIDs(t *testing.T) {
	require.Len(t, Catalog, 9)

	wantOrder := []string{
		"app_form", "passport", "emirates_id", "medical_report",
		"insurance_card", "no_insurance", "salary_cert",
		"bank_statement", "tenancy_contract",
	}
	for i, item := range Catalog {
		assert.Equal(t, wantOrder[i], item.ID)
	}

	_, ok := CatalogItemByID("passport")
	assert.True(t, ok)
	_, ok = CatalogItemByID("drivers_license")
	assert.False(t, ok)
}

func TestBuildChecklist_DefaultsPending(t *testing.T) {
	checklist := BuildChecklist(nil)

	require.Len(t, checklist.Items, len(Catalog))
	for _, item := range checklist.Items {
		assert.Equal(t, DocumentPending, item.Status)
		assert.Empty(t, item.FileName)
	}
	assert.Equal(t, 0.0, checklist.CompletionRatio())
}

func TestCompletionRatio(t *testing.T) {
	tests := []struct {
		name    string
		records []*DocumentRecord
		want    float64
	}{
		{
			name: "two submitted",
			records: []*DocumentRecord{
				record("app_form", DocumentSubmitted),
				record("passport", DocumentSubmitted),
			},
			want: 2.0 / 9.0,
		},
		{
			name: "submitted and approved both count",
			records: []*DocumentRecord{
				record("app_form", DocumentSubmitted),
				record("passport", DocumentApproved),
				record("emirates_id", DocumentMissing),
			},
			want: 2.0 / 9.0,
		},
		{
			name: "all nine complete",
			records: func() []*DocumentRecord {
				var recs []*DocumentRecord
				for _, item := range Catalog {
					recs = append(recs, record(item.ID, DocumentSubmitted))
				}
				return recs
			}(),
			want: 1.0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			checklist := BuildChecklist(tt.records)
			assert.InDelta(t, tt.want, checklist.CompletionRatio(), 1e-9)
		})
	}
}

func TestCompletionRatio_MonotonicUnderUploads(t *testing.T) {
	var records []*DocumentRecord
	previous := 0.0

	for _, item := range Catalog {
		records = append(records, record(item.ID, DocumentSubmitted))
		ratio := BuildChecklist(records).CompletionRatio()
		assert.GreaterOrEqual(t, ratio, previous)
		previous = ratio
	}
	assert.Equal(t, 1.0, previous)
}

func TestCanAdvancePast_RequiredGating(t *testing.T) {
	checklist := BuildChecklist([]*DocumentRecord{
		record("app_form", DocumentSubmitted),
	})

	// Uploaded required document unblocks.
	assert.True(t, checklist.CanAdvancePast("app_form"))

	// Pending required documents block.
	assert.False(t, checklist.CanAdvancePast("passport"))
	assert.False(t, checklist.CanAdvancePast("medical_report"))

	// Optional documents never block, uploaded or not.
	assert.True(t, checklist.CanAdvancePast("insurance_card"))
	assert.True(t, checklist.CanAdvancePast("no_insurance"))

	// Unknown slots cannot be advanced past.
	assert.False(t, checklist.CanAdvancePast("unknown_doc"))
}

func TestCanAdvancePast_ApprovedCounts(t *testing.T) {
	checklist := BuildChecklist([]*DocumentRecord{
		record("passport", DocumentApproved),
	})
	assert.True(t, checklist.CanAdvancePast("passport"))
}

func TestReadyForSubmission_RequiredOnly(t *testing.T) {
	var records []*DocumentRecord
	for _, item := range Catalog {
		if item.Required {
			records = append(records, record(item.ID, DocumentSubmitted))
		}
	}

	checklist := BuildChecklist(records)
	assert.True(t, checklist.ReadyForSubmission(),
		"optional documents must not gate submission")
	assert.Less(t, checklist.CompletionRatio(), 1.0)
	assert.Empty(t, checklist.MissingRequired())
}

func TestReadyForSubmission_MissingRequired(t *testing.T) {
	checklist := BuildChecklist([]*DocumentRecord{
		record("app_form", DocumentSubmitted),
		record("insurance_card", DocumentSubmitted),
	})

	assert.False(t, checklist.ReadyForSubmission())
	missing := checklist.MissingRequired()
	assert.Contains(t, missing, "passport")
	assert.Contains(t, missing, "tenancy_contract")
	assert.NotContains(t, missing, "insurance_card")
	assert.NotContains(t, missing, "no_insurance")
}

func TestValidateUploadFilename(t *testing.T) {
	tests := []struct {
		fileName string
		ok       bool
	}{
		{"scan.pdf", true},
		{"photo.JPG", true},
		{"id-front.jpeg", true},
		{"id-back.png", true},
		{"report.docx", false},
		{"script.exe", false},
		{"noextension", false},
	}

	for _, tt := range tests {
		t.Run(tt.fileName, func(t *testing.T) {
			err := ValidateUploadFilename(tt.fileName)
			if tt.ok {
				assert.NoError(t, err)
			} else {
				assert.Error(t, err)
			}
		})
	}
}
