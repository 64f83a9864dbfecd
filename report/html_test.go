package report

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/xenbackup/xenbackup/types"
)

func testDocument() *types.ReportDocument {
	return &types.ReportDocument{
		BackupID:    "11111111-2222-3333-4444-555555555555",
		GeneratedAt: time.Date(2023, 4, 1, 12, 0, 0, 0, time.UTC),
		ServerHost:  "mdm.example.com",
		ServerProperties: []types.ServerProperty{
			{Name: "audit.log.cleanup", Value: "7", DisplayName: "Audit log cleanup", DefaultValue: "1"},
		},
		ClientProperties: []types.ClientProperty{
			{DisplayName: "Enable touch ID", Key: "ENABLE_TOUCH_ID_AUTH", Value: "true"},
		},
		Applications: []types.Application{
			{
				ApplicationSummary: types.ApplicationSummary{
					ID: 1, Name: "Secure Mail", AppType: types.AppTypeMDX,
					Categories: []string{"Default", "Mail"},
				},
				Detail: &types.ApplicationDetail{
					ApplicationSummary: types.ApplicationSummary{ID: 1, Name: "Secure Mail", AppType: types.AppTypeMDX},
					IconData:           "aWNvbg==",
					Roles:              []string{"AllUsers"},
					IOS: &types.PlatformConfig{
						DisplayName:  "Secure Mail",
						AppVersion:   "10.8.5",
						MinOsVersion: "9.0",
						Policies: []types.Policy{
							{PolicyName: "App passcode", PolicyValue: "true", PolicyCategory: "Authentication"},
						},
					},
					Android: nil,
				},
			},
			{
				ApplicationSummary: types.ApplicationSummary{
					ID: 2, Name: "Timesheets", AppType: types.AppTypeWebLink, Disabled: true,
				},
			},
		},
	}
}

func TestRender(t *testing.T) {
	output, err := Render(testDocument())
	require.NoError(t, err)
	html := string(output)

	assert.Contains(t, html, "mdm.example.com")
	assert.Contains(t, html, "11111111-2222-3333-4444-555555555555")
	assert.Contains(t, html, "audit.log.cleanup")
	assert.Contains(t, html, "ENABLE_TOUCH_ID_AUTH")
	assert.Contains(t, html, "Secure Mail")
	assert.Contains(t, html, "App passcode")
	assert.Contains(t, html, "Default, Mail")
	assert.Contains(t, html, "data:image/png;base64,aWNvbg==")
	assert.Contains(t, html, "(disabled)")
}

func TestRender_UnconfiguredPlatformIsExplicit(t *testing.T) {
	output, err := Render(testDocument())
	require.NoError(t, err)

	// Android is absent on the managed app: marked, never silently omitted
	assert.Contains(t, string(output), "Not configured")
}

func TestRender_SummaryOnlyAppHasNoPlatformSections(t *testing.T) {
	doc := &types.ReportDocument{
		GeneratedAt: time.Now(),
		ServerHost:  "mdm.example.com",
		Applications: []types.Application{
			{ApplicationSummary: types.ApplicationSummary{ID: 2, Name: "Timesheets", AppType: types.AppTypeWebLink}},
		},
	}

	output, err := Render(doc)
	require.NoError(t, err)
	assert.NotContains(t, string(output), "Not configured")
}

func TestRender_Deterministic(t *testing.T) {
	first, err := Render(testDocument())
	require.NoError(t, err)
	second, err := Render(testDocument())
	require.NoError(t, err)
	assert.Equal(t, first, second)
}

func TestWrite(t *testing.T) {
	path := filepath.Join(t.TempDir(), "backup.html")
	require.NoError(t, Write(testDocument(), path))

	content, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(content), "mdm.example.com")
}

func TestFilename(t *testing.T) {
	generatedAt := time.Date(2023, 4, 1, 12, 30, 5, 0, time.UTC)
	assert.Equal(t, "mdm.example.com-2023-04-01-123005.html", Filename("mdm.example.com", generatedAt))
}
