package services

import (
	"bytes"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/Modeva-Ecommerce/modeva-cms-admin/listfilter"
	"github.com/Modeva-Ecommerce/modeva-cms-admin/models"
	"github.com/johnfercher/maroto/pkg/color"
	"github.com/johnfercher/maroto/pkg/consts"
	"github.com/johnfercher/maroto/pkg/pdf"
	"github.com/johnfercher/maroto/pkg/props"
)

var (
	darkGray   = color.Color{Red: 38, Green: 38, Blue: 34}
	mediumGray = color.Color{Red: 121, Green: 119, Blue: 109}
)

// RenderOrdersPDF renders an order list export. The active filters are
// printed under the title so a printed page says what it contains.
func RenderOrdersPDF(rows []models.CMSOrderListRow, total int64, effective listfilter.State, generatedAt time.Time) (*bytes.Buffer, error) {
	m := pdf.NewMaroto(consts.Landscape, consts.A4)
	m.SetPageMargins(15, 15, 15)

	m.Row(12, func() {
		m.Col(12, func() {
			m.Text("ORDERS", props.Text{
				Size:  20,
				Style: consts.Bold,
				Color: darkGray,
			})
		})
	})

	m.Row(6, func() {
		m.Col(8, func() {
			m.Text(describeFilters(effective), props.Text{
				Size:  9,
				Color: mediumGray,
			})
		})
		m.Col(4, func() {
			m.Text(fmt.Sprintf("%d of %d orders · %s", len(rows), total, generatedAt.Format("Jan 02, 2006 15:04")), props.Text{
				Size:  9,
				Color: mediumGray,
				Align: consts.Right,
			})
		})
	})

	m.Row(6, func() {})

	header := []string{"Order", "Customer", "Email", "Date", "Items", "Total", "Status"}
	contents := make([][]string, 0, len(rows))
	for _, r := range rows {
		contents = append(contents, []string{
			r.OrderNumber,
			r.CustomerName,
			r.CustomerEmail,
			r.CreatedAt.Format("Jan 02, 2006"),
			fmt.Sprintf("%d", r.ItemCount),
			fmt.Sprintf("$%.2f", r.TotalAmount),
			r.Status,
		})
	}

	m.TableList(header, contents, props.TableList{
		HeaderProp: props.TableListContent{
			Size:      9,
			GridSizes: []uint{2, 2, 3, 2, 1, 1, 1},
		},
		ContentProp: props.TableListContent{
			Size:      8,
			GridSizes: []uint{2, 2, 3, 2, 1, 1, 1},
		},
		Align:              consts.Left,
		HeaderContentSpace: 1,
		Line:               true,
	})

	buf, err := m.Output()
	if err != nil {
		return nil, fmt.Errorf("render orders PDF: %w", err)
	}
	return &buf, nil
}

// describeFilters renders the non-empty filters as "key: value" pairs.
func describeFilters(effective listfilter.State) string {
	keys := make([]string, 0, len(effective))
	for k, v := range effective {
		if !listfilter.IsEmpty(v) {
			keys = append(keys, k)
		}
	}
	if len(keys) == 0 {
		return "All orders"
	}
	sort.Strings(keys)

	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		switch v := effective[k].(type) {
		case []any:
			items := make([]string, len(v))
			for i := range v {
				items[i] = fmt.Sprint(v[i])
			}
			parts = append(parts, k+": "+strings.Join(items, ", "))
		default:
			parts = append(parts, fmt.Sprintf("%s: %v", k, v))
		}
	}
	return strings.Join(parts, " · ")
}
