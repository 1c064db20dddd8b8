package shots

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefault(t *testing.T) {
	specs := Default()
	require.Len(t, specs, 5)
	require.NoError(t, Validate(specs))

	assert.Equal(t, Spec{
		Source:   "dashboard.png",
		Headline: "Track Every Sip",
		Subtitle: "Stay on top of your daily hydration goals",
		Output:   "1_6.5_inch.png",
	}, specs[0])
	assert.Equal(t, "5_6.5_inch.png", specs[4].Output)
}

func writeCSV(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "shots.csv")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func TestLoadTable(t *testing.T) {
	path := writeCSV(t, `output,source,headline,subtitle,notes
1_6.5_inch.png,dashboard.png,Track Every Sip,"Stay on top of your daily hydration goals",hero

2_6.5_inch.png, paywall.png ,"Unlock Your Potential",Premium insights to transform your habits
`)
	specs, err := LoadTable(path)
	require.NoError(t, err)
	require.Len(t, specs, 2)
	assert.Equal(t, Default()[0], specs[0])
	assert.Equal(t, Default()[1], specs[1])
}

func TestLoadTable_Errors(t *testing.T) {
	_, err := LoadTable(filepath.Join(t.TempDir(), "missing.csv"))
	require.Error(t, err)

	_, err = LoadTable(writeCSV(t, ""))
	assert.ErrorContains(t, err, "no header")

	_, err = LoadTable(writeCSV(t, "source,headline\na.png,Hi\n"))
	assert.ErrorContains(t, err, `missing "output" column`)

	_, err = LoadTable(writeCSV(t, "source,output\n"))
	assert.ErrorContains(t, err, "no screenshots")

	_, err = LoadTable(writeCSV(t, "source,output\na.png,x.png\nb.png,x.png\n"))
	assert.ErrorContains(t, err, "already used")

	_, err = LoadTable(writeCSV(t, "source,output\n,x.png\n"))
	assert.ErrorContains(t, err, "source is empty")
}

func TestSelect(t *testing.T) {
	specs := Default()

	assert.Equal(t, specs, Select(specs, nil))

	got := Select(specs, []string{"history", "1_6.5_inch.png"})
	require.Len(t, got, 2)
	assert.Equal(t, "dashboard.png", got[0].Source)
	assert.Equal(t, "history.png", got[1].Source)

	assert.Len(t, Select(specs, []string{"SETTINGS.PNG"}), 1)
	assert.Empty(t, Select(specs, []string{"nope", " "}))
}

func TestExportText(t *testing.T) {
	out := ExportText(Default()[:2])
	assert.Equal(t, `1. dashboard.png -> 1_6.5_inch.png
   Track Every Sip
   Stay on top of your daily hydration goals
2. paywall.png -> 2_6.5_inch.png
   Unlock Your Potential
   Premium insights to transform your habits`, out)

	assert.Equal(t, "1. a.png -> b.png", ExportText([]Spec{{Source: "a.png", Output: "b.png"}}))
}
