package views

import (
	"context"
	"io"
	"strings"

	"github.com/a-h/templ"

	"github.com/ManuelReschke/CoronaDash/internal/pkg/viewmodel"
)

// CountryTable renders the countries table shown next to the bubble map.
func CountryTable(rows []viewmodel.CountryRow) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		var b strings.Builder
		b.WriteString(`<table class="country-table"><thead><tr>`)
		b.WriteString(`<th>Country</th><th>Confirmed</th><th>Deaths</th><th>Recovered</th>`)
		b.WriteString(`</tr></thead><tbody>`)
		for _, r := range rows {
			b.WriteString(`<tr><td>`)
			b.WriteString(templ.EscapeString(r.Country))
			b.WriteString(`</td><td class="num confirmed">`)
			b.WriteString(templ.EscapeString(r.Confirmed))
			b.WriteString(`</td><td class="num deaths">`)
			b.WriteString(templ.EscapeString(r.Deaths))
			b.WriteString(`</td><td class="num recovered">`)
			b.WriteString(templ.EscapeString(r.Recovered))
			b.WriteString(`</td></tr>`)
		}
		if len(rows) == 0 {
			b.WriteString(`<tr><td colspan="4" class="empty">No data</td></tr>`)
		}
		b.WriteString(`</tbody></table>`)

		_, err := io.WriteString(w, b.String())
		return err
	})
}
