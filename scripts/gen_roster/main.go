// Command gen_roster writes a sample roster workbook for local
// development, matching the column layout the Excel roster source
// expects.
package main

import (
	"flag"
	"log"

	"github.com/xuri/excelize/v2"
)

var header = []string{"child", "campus", "classroom", "monAM", "monPM", "tueAM", "tuePM", "wedAM", "wedPM", "thuAM", "thuPM", "friAM", "friPM"}

var rows = [][]string{
	{"Ada Mitchell", "Main", "Toddler A", "Toddler A", "Toddler A", "Toddler A", "", "Toddler A", "Toddler A", "", "", "Toddler A", ""},
	{"Ben Okafor", "Main", "Toddler B", "", "Toddler B", "", "Toddler B", "", "Toddler B", "", "Toddler B", "", "Toddler B"},
	{"Carmen Diaz", "North", "Preschool 1", "Preschool 1", "Preschool 1", "Preschool 1", "Preschool 1", "Preschool 1", "Preschool 1", "Preschool 1", "Preschool 1", "Preschool 1", "Preschool 1"},
	{"Dev Patel", "North", "Preschool 2", "Preschool 2", "", "Preschool 2", "", "Preschool 2", "", "Preschool 2", "", "Preschool 2", ""},
}

func main() {
	out := flag.String("out", "roster.xlsx", "output workbook path")
	flag.Parse()

	f := excelize.NewFile()
	sheet := f.GetSheetName(0)

	if err := f.SetSheetRow(sheet, "A1", &header); err != nil {
		log.Fatalf("write header: %v", err)
	}
	for i, row := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			log.Fatalf("cell name: %v", err)
		}
		if err := f.SetSheetRow(sheet, cell, &row); err != nil {
			log.Fatalf("write row %d: %v", i+2, err)
		}
	}

	if err := f.SaveAs(*out); err != nil {
		log.Fatalf("save %s: %v", *out, err)
	}
	log.Printf("wrote %s with %d students", *out, len(rows))
}
