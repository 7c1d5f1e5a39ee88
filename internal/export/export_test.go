package export

import (
	"bytes"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/packonce/packonce/internal/checklist"
	"github.com/packonce/packonce/internal/model"
)

func TestRenderTextExactFormat(t *testing.T) {
	sections := []checklist.Section{
		{
			Title: "Essentials",
			Items: []model.PackItem{
				{Name: "Passport", Quantity: 1, Note: "In top drawer", Packed: true},
			},
		},
	}

	got := RenderText("Tokyo Trip", sections)
	want := "Tokyo Trip Checklist\n\nEssentials\n[x] Passport (x1) — In top drawer\n\n"
	assert.Equal(t, want, got)
}

func TestRenderTextUnpackedAndNoNote(t *testing.T) {
	sections := []checklist.Section{
		{
			Title: "Clothes",
			Items: []model.PackItem{
				{Name: "Socks", Quantity: 7},
			},
		},
	}

	got := RenderText("Hike", sections)
	want := "Hike Checklist\n\nClothes\n[ ] Socks (x7)\n\n"
	assert.Equal(t, want, got)
}

func TestRenderTextEmptyPack(t *testing.T) {
	got := RenderText("Empty", nil)
	assert.Equal(t, "Empty Checklist\n\n", got)
}

func TestExportTextIgnoresEntitlement(t *testing.T) {
	pack := &model.Pack{
		Name: "Gym",
		Items: []model.PackItem{
			{Name: "Water bottle", Quantity: 1, Category: model.CategoryExtras},
		},
	}

	result, err := Exporter{Format: model.ExportFormatText, ProActive: false}.Export(pack)
	require.NoError(t, err)
	assert.Equal(t, model.ExportFormatText, result.Format)
	assert.Contains(t, string(result.Data), "[ ] Water bottle (x1)")
}

func TestExportPDFRequiresEntitlement(t *testing.T) {
	pack := &model.Pack{Name: "Gym"}

	_, err := Exporter{Format: model.ExportFormatPDF, ProActive: false}.Export(pack)
	assert.ErrorIs(t, err, ErrProRequired)
}

func TestExportPDFWhenEntitled(t *testing.T) {
	pack := &model.Pack{
		Name: "Tokyo Trip",
		Items: []model.PackItem{
			{Name: "Passport", Quantity: 1, Category: model.CategoryEssentials, Packed: true},
			{Name: "Socks", Quantity: 7, Category: model.CategoryClothes},
		},
	}

	result, err := Exporter{Format: model.ExportFormatPDF, ProActive: true}.Export(pack)
	require.NoError(t, err)
	assert.Equal(t, model.ExportFormatPDF, result.Format)
	assert.False(t, result.FellBack)
	assert.True(t, bytes.HasPrefix(result.Data, []byte("%PDF")), "expected a PDF header")
}

func TestExportFallsBackToTextWhenPDFRenderFails(t *testing.T) {
	pack := &model.Pack{
		Name: "Tokyo Trip",
		Items: []model.PackItem{
			{Name: "Passport", Quantity: 1, Category: model.CategoryEssentials},
		},
	}

	e := Exporter{
		Format:    model.ExportFormatPDF,
		ProActive: true,
		renderPDF: func(string, []checklist.Section) ([]byte, error) {
			return nil, errors.New("render failed")
		},
	}

	result, err := e.Export(pack)
	require.NoError(t, err)
	assert.True(t, result.FellBack)
	assert.Equal(t, model.ExportFormatText, result.Format)
	assert.Contains(t, string(result.Data), "[ ] Passport (x1)")
}

func TestExportAlwaysUsesFullItemSet(t *testing.T) {
	// Export reflects "All": packed items are never filtered out.
	pack := &model.Pack{
		Name: "Gym",
		Items: []model.PackItem{
			{Name: "Water bottle", Quantity: 1, Category: model.CategoryExtras, Packed: true},
			{Name: "Towel", Quantity: 1, Category: model.CategoryExtras},
		},
	}

	result, err := Exporter{Format: model.ExportFormatText}.Export(pack)
	require.NoError(t, err)
	assert.Contains(t, string(result.Data), "[x] Water bottle (x1)")
	assert.Contains(t, string(result.Data), "[ ] Towel (x1)")
}
