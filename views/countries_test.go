package views

import (
	"bytes"
	"context"
	"testing"

	"github.com/a-h/templ"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ManuelReschke/CoronaDash/internal/pkg/viewmodel"
)

func TestCountryTable(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	err := CountryTable([]viewmodel.CountryRow{
		{Country: "Bosnia & Herzegovina", Confirmed: "1,000", Deaths: "10", Recovered: "900"},
		{Country: "<script>", Confirmed: "1", Deaths: "0", Recovered: "0"},
	}).Render(context.Background(), &buf)
	require.NoError(t, err)

	html := buf.String()
	assert.Contains(t, html, "<th>Confirmed</th>")
	assert.Contains(t, html, "Bosnia &amp; Herzegovina")
	assert.Contains(t, html, `<td class="num confirmed">1,000</td>`)
	assert.NotContains(t, html, "<script>")
	assert.NotContains(t, html, "No data")
}

func TestCountryTable_Empty(t *testing.T) {
	t.Parallel()

	out, err := templ.ToGoHTML(context.Background(), CountryTable(nil))
	require.NoError(t, err)
	assert.Contains(t, string(out), "No data")
}
