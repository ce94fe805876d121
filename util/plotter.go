package util

import (
	"fmt"
	"io"
	"sort"

	"portal-server/models/rooms"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/opts"
)

// RenderFreeRoomsChart writes an HTML bar chart with one bar group per hour slot
// and one series per room type, valued by the number of free rooms.
func RenderFreeRoomsChart(w io.Writer, days []rooms.DayAvailability) error {
	var labels []string
	typeSet := map[string]struct{}{}
	for _, day := range days {
		for _, slot := range day.HourSlots {
			labels = append(labels, fmt.Sprintf("%s %s", FormatCalendarDate(day.Date), FormatTimeRange(slot.From, slot.To)))
			for roomType := range slot.RoomsByType {
				typeSet[roomType] = struct{}{}
			}
		}
	}

	roomTypes := make([]string, 0, len(typeSet))
	for roomType := range typeSet {
		roomTypes = append(roomTypes, roomType)
	}
	sort.Strings(roomTypes)

	bar := charts.NewBar()
	bar.SetGlobalOptions(
		charts.WithInitializationOpts(opts.Initialization{
			PageTitle: "Free rooms",
			Width:     "1200px",
			Height:    "600px",
		}),
		charts.WithTitleOpts(opts.Title{
			Title:    "Free rooms per hour",
			Subtitle: fmt.Sprintf("%d slots", len(labels)),
		}),
		charts.WithTooltipOpts(opts.Tooltip{Show: opts.Bool(true)}),
		charts.WithLegendOpts(opts.Legend{Show: opts.Bool(true)}),
	)

	bar.SetXAxis(labels)
	for _, roomType := range roomTypes {
		data := make([]opts.BarData, 0, len(labels))
		for _, day := range days {
			for _, slot := range day.HourSlots {
				data = append(data, opts.BarData{Value: len(slot.RoomsByType[roomType])})
			}
		}
		bar.AddSeries(roomType, data)
	}

	if err := bar.Render(w); err != nil {
		return fmt.Errorf("failed to render chart: %w", err)
	}
	return nil
}
