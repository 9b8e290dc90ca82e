package reportfig_test

import (
	"bytes"
	"fmt"

	"github.com/lvillar/reportfig"
)

func ExampleTemplate_Render() {
	tpl, err := reportfig.New("analysis/figure_03.go",
		reportfig.WithDraft(true),
		reportfig.WithContent(
			reportfig.Cell{Name: "title", Text: reportfig.TextList{
				{S: "Pump Station Overview", X: 0.5, Y: 0.5, Align: "C", VAlign: "M", Style: "B", Size: 14},
			}},
			reportfig.Cell{Text: reportfig.TextList{
				{S: "Rev A", X: 0.05, Y: 0.7, Size: 8},
				{S: "2026-08-30", X: 0.05, Y: 0.3, Size: 8},
			}},
			reportfig.Cell{Text: reportfig.TextList{
				{S: "Sheet 1 of 1", X: 0.5, Y: 0.5, Align: "C", Size: 8},
			}},
			reportfig.Cell{Barcode: &reportfig.BarcodeSpec{Kind: "qr", Content: "DWG-0042"}},
		),
	)
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	var buf bytes.Buffer
	if err := tpl.Render(&buf); err != nil {
		fmt.Println("error:", err)
		return
	}

	fmt.Println("has PDF header:", bytes.HasPrefix(buf.Bytes(), []byte("%PDF")))
	fmt.Println("non-empty:", buf.Len() > 0)
	// Output:
	// has PDF header: true
	// non-empty: true
}

func ExampleTemplate_Blank() {
	tpl, err := reportfig.New("fig.go")
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	var buf bytes.Buffer
	if err := tpl.Blank(&buf); err != nil {
		fmt.Println("error:", err)
		return
	}

	fmt.Println("has PDF header:", bytes.HasPrefix(buf.Bytes(), []byte("%PDF")))
	// Output:
	// has PDF header: true
}

func ExampleParse() {
	doc := `{
		"script": "analysis/figure_03.go",
		"draft": false,
		"titleblock": [
			{"name": "title", "text": {"s": "Lift Station 12", "x": 0.5, "y": 0.5, "align": "C"}}
		]
	}`

	tpl, err := reportfig.Parse([]byte(doc))
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	var buf bytes.Buffer
	if err := tpl.Render(&buf); err != nil {
		fmt.Println("error:", err)
		return
	}

	fmt.Println("has PDF header:", bytes.HasPrefix(buf.Bytes(), []byte("%PDF")))
	// Output:
	// has PDF header: true
}
