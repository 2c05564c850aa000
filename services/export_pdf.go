package services

import (
	"fmt"

	"github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/consts/orientation"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"
)

// GenerateContractPDF creates a PDF rendition of a contract for archiving
// and e-mail. Labels are Latin-script because the embedded base fonts
// cannot shape Arabic; the browser print documents remain the primary
// Arabic output.
func GenerateContractPDF(data ContractData, companyName string) ([]byte, error) {
	cfg := config.NewBuilder().
		WithOrientation(orientation.Vertical).
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).
		WithTopMargin(10).
		WithRightMargin(10).
		WithPageNumber(props.PageNumber{
			Pattern: "Page {current} of {total}",
			Place:   props.RightBottom,
			Size:    7,
			Color:   &props.Color{Red: 120, Green: 120, Blue: 120},
		}).
		Build()

	m := maroto.New(cfg)

	addContractHeader(m, data, companyName)
	addContractParties(m, data)
	addBillboardTable(m, data)
	addContractTotals(m, data)
	addInstallmentTable(m, data)

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("generate contract PDF: %w", err)
	}
	return doc.GetBytes(), nil
}

func addContractHeader(m core.Maroto, data ContractData, companyName string) {
	m.AddRows(
		row.New(10).Add(
			col.New(6).Add(
				text.New(companyName, props.Text{
					Size:  14,
					Style: fontstyle.Bold,
					Align: align.Left,
				}),
			),
			col.New(6).Add(
				text.New("RENTAL CONTRACT", props.Text{
					Size:  14,
					Style: fontstyle.Bold,
					Align: align.Right,
					Color: &props.Color{Red: 33, Green: 37, Blue: 41},
				}),
			),
		),
	)

	m.AddRows(
		row.New(8).Add(
			col.New(6).Add(
				text.New(fmt.Sprintf("Contract #: %s", data.Number), props.Text{
					Size:  10,
					Style: fontstyle.Bold,
					Align: align.Left,
				}),
			),
			col.New(6).Add(
				text.New(fmt.Sprintf("Duration: %d months", data.DurationMonths), props.Text{
					Size:  9,
					Align: align.Right,
					Color: &props.Color{Red: 80, Green: 80, Blue: 80},
				}),
			),
		),
	)

	m.AddRows(row.New(3))
}

func addContractParties(m core.Maroto, data ContractData) {
	label := props.Text{
		Size:  7,
		Style: fontstyle.Bold,
		Align: align.Left,
		Color: &props.Color{Red: 100, Green: 100, Blue: 100},
	}
	value := props.Text{Size: 9, Align: align.Left}

	m.AddRows(
		row.New(6).Add(
			col.New(3).Add(text.New("CUSTOMER", label)),
			col.New(3).Add(text.New("COMPANY", label)),
			col.New(3).Add(text.New("PHONE", label)),
			col.New(3).Add(text.New("AD TYPE", label)),
		),
		row.New(7).Add(
			col.New(3).Add(text.New(data.CustomerName, value)),
			col.New(3).Add(text.New(data.Company, value)),
			col.New(3).Add(text.New(data.Phone, value)),
			col.New(3).Add(text.New(data.AdType, value)),
		),
	)
	m.AddRows(row.New(4))
}

func addBillboardTable(m core.Maroto, data ContractData) {
	headerBg := &props.Color{Red: 33, Green: 37, Blue: 41}
	headerText := props.Text{
		Size:  8,
		Style: fontstyle.Bold,
		Align: align.Center,
		Color: &props.Color{Red: 255, Green: 255, Blue: 255},
	}
	headerCell := props.Cell{BackgroundColor: headerBg}

	m.AddRows(
		row.New(8).Add(
			col.New(1).Add(text.New("#", headerText)).WithStyle(&headerCell),
			col.New(3).Add(text.New("Billboard", headerText)).WithStyle(&headerCell),
			col.New(2).Add(text.New("Municipality", headerText)).WithStyle(&headerCell),
			col.New(2).Add(text.New("Size", headerText)).WithStyle(&headerCell),
			col.New(2).Add(text.New("Faces", headerText)).WithStyle(&headerCell),
			col.New(2).Add(text.New("Level", headerText)).WithStyle(&headerCell),
		),
	)

	cellText := props.Text{Size: 8, Align: align.Center}
	leftText := props.Text{Size: 8, Align: align.Left}
	for i, b := range data.Boards {
		m.AddRows(
			row.New(7).Add(
				col.New(1).Add(text.New(fmt.Sprintf("%d", i+1), cellText)),
				col.New(3).Add(text.New(b.Name, leftText)),
				col.New(2).Add(text.New(b.Municipality, cellText)),
				col.New(2).Add(text.New(CanonicalSize(b.Size), cellText)),
				col.New(2).Add(text.New(fmt.Sprintf("%d", b.Faces), cellText)),
				col.New(2).Add(text.New(b.Level, cellText)),
			),
		)
	}
	m.AddRows(row.New(4))
}

func addContractTotals(m core.Maroto, data ContractData) {
	label := props.Text{Size: 9, Align: align.Right, Style: fontstyle.Bold}
	value := props.Text{Size: 9, Align: align.Right}

	totalRows := []struct {
		name   string
		amount float64
	}{
		{"Subtotal", data.Totals.Subtotal},
		{"Discount", data.Totals.DiscountAmount},
		{"Installation", data.Totals.FinalTotal - data.Totals.RentalOnly},
		{"Operating Fee", data.Totals.OperatingFee},
		{"Total", data.Totals.FinalTotal},
	}
	for _, r := range totalRows {
		m.AddRows(
			row.New(6).Add(
				col.New(8),
				col.New(2).Add(text.New(r.name, label)),
				col.New(2).Add(text.New(FormatAmount(r.amount), value)),
			),
		)
	}
}

func addInstallmentTable(m core.Maroto, data ContractData) {
	if len(data.Installments) == 0 {
		return
	}

	m.AddRows(row.New(5))
	m.AddRows(
		row.New(7).Add(
			col.New(12).Add(text.New("Payment schedule", props.Text{
				Size:  10,
				Style: fontstyle.Bold,
				Align: align.Left,
			})),
		),
	)

	cellText := props.Text{Size: 8, Align: align.Left}
	amountText := props.Text{Size: 8, Align: align.Right}
	for i, inst := range data.Installments {
		m.AddRows(
			row.New(6).Add(
				col.New(1).Add(text.New(fmt.Sprintf("%d", i+1), cellText)),
				col.New(4).Add(text.New(inst.DueDate, cellText)),
				col.New(3).Add(text.New(FormatAmount(inst.Amount), amountText)),
			),
		)
	}
}
