package boq

import (
	"fmt"

	"github.com/rotisserie/eris"
	"github.com/tealeg/xlsx/v2"

	"github.com/BMadhushan18/boq-engine/internal/model"
)

// WriteXLSX saves a bill of quantities as a two-sheet workbook: a
// building-level summary and a per-room breakdown.
func WriteXLSX(bill model.BOQ, path string) error {
	f := xlsx.NewFile()

	if err := addSummarySheet(f, bill); err != nil {
		return err
	}
	if err := addRoomsSheet(f, bill); err != nil {
		return err
	}

	if err := f.Save(path); err != nil {
		return eris.Wrap(err, "boq: save workbook")
	}
	return nil
}

func addSummarySheet(f *xlsx.File, bill model.BOQ) error {
	sheet, err := f.AddSheet("Summary")
	if err != nil {
		return eris.Wrap(err, "boq: add summary sheet")
	}

	rows := [][]string{
		{"Building", bill.BuildingName},
		{"Building ID", bill.BuildingID},
		{"Generated", bill.GeneratedAt.Format("2006-01-02 15:04 MST")},
		{},
		{"Rooms", fmt.Sprintf("%d", bill.Summary.TotalRooms)},
		{"Total floor area (sqm)", fmt.Sprintf("%.2f", bill.Summary.TotalFloorAreaSqm)},
		{"Paint (liters)", fmt.Sprintf("%.1f", bill.Summary.TotalPaintLiters)},
		{"Putty (kg)", fmt.Sprintf("%.2f", bill.Summary.TotalPuttyKg)},
		{"Floor tiles (600x600)", fmt.Sprintf("%d", bill.Summary.TotalFloorTilesCount)},
		{"Wall tiles (300x600)", fmt.Sprintf("%d", bill.Summary.TotalWallTilesCount)},
		{"Estimated cost (LKR)", fmt.Sprintf("%.2f", bill.Summary.TotalEstimatedCostLKR)},
	}
	for _, cells := range rows {
		row := sheet.AddRow()
		for _, v := range cells {
			row.AddCell().SetString(v)
		}
	}
	return nil
}

func addRoomsSheet(f *xlsx.File, bill model.BOQ) error {
	sheet, err := f.AddSheet("Rooms")
	if err != nil {
		return eris.Wrap(err, "boq: add rooms sheet")
	}

	header := sheet.AddRow()
	for _, h := range []string{
		"Room", "Type", "Length (m)", "Width (m)", "Height (m)",
		"Floor area (sqm)", "Wall area (sqm)", "Paint (L)", "Putty (kg)",
		"Floor tiles", "Wall tiles", "Cost (LKR)",
	} {
		header.AddCell().SetString(h)
	}

	for _, room := range bill.RoomsBreakdown {
		row := sheet.AddRow()
		row.AddCell().SetString(room.RoomName)
		row.AddCell().SetString(string(room.RoomType))
		row.AddCell().SetFloat(room.Dimensions.LengthM)
		row.AddCell().SetFloat(room.Dimensions.WidthM)
		row.AddCell().SetFloat(room.Dimensions.HeightM)
		row.AddCell().SetFloat(room.Areas.FloorAreaSqm)
		row.AddCell().SetFloat(room.Areas.WallAreaSqm)
		row.AddCell().SetFloat(room.Paint.Liters)
		row.AddCell().SetFloat(room.Putty.Kg)
		row.AddCell().SetInt(room.FloorTiles.TilesCount)
		if room.WallTiles != nil {
			row.AddCell().SetInt(room.WallTiles.TilesCount)
		} else {
			row.AddCell().SetString("-")
		}
		row.AddCell().SetFloat(room.TotalCostLKR)
	}
	return nil
}
