package plan

import (
	"fmt"
	"sort"
	"strings"

	"gonum.org/v1/gonum/stat"

	"floorplan/pkg/geometry"
)

// FloorSummary is the per-floor area report printed by the CLI.
type FloorSummary struct {
	Name       string
	RoomCount  int
	TotalArea  float64
	MeanArea   float64
	StdDevArea float64
	Largest    Room
	Smallest   Room
}

// Summarize computes area statistics over a floor's rooms. The zero summary
// is returned for a floor with no rooms.
func Summarize(f *Floor) FloorSummary {
	rooms := f.AllRooms()
	s := FloorSummary{Name: f.Name, RoomCount: len(rooms)}
	if len(rooms) == 0 {
		return s
	}

	areas := make([]float64, len(rooms))
	s.Largest, s.Smallest = rooms[0], rooms[0]
	for i, r := range rooms {
		areas[i] = r.Area()
		if r.Area() > s.Largest.Area() {
			s.Largest = r
		}
		if r.Area() < s.Smallest.Area() {
			s.Smallest = r
		}
		s.TotalArea += r.Area()
	}

	s.MeanArea = stat.Mean(areas, nil)
	if len(areas) > 1 {
		s.StdDevArea = stat.StdDev(areas, nil)
	}
	return s
}

// String renders the summary as the multi-line report the CLI prints.
func (s FloorSummary) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s: %d rooms, %s total\n", s.Name, s.RoomCount, geometry.FormatArea(s.TotalArea, 0))
	if s.RoomCount == 0 {
		return b.String()
	}
	fmt.Fprintf(&b, "  mean room %s (stddev %.1f)\n", geometry.FormatArea(s.MeanArea, 1), s.StdDevArea)
	fmt.Fprintf(&b, "  largest %s (%s), smallest %s (%s)\n",
		roomName(s.Largest), geometry.FormatArea(s.Largest.Area(), 0),
		roomName(s.Smallest), geometry.FormatArea(s.Smallest.Area(), 0))
	return b.String()
}

// SummarizeHouse reports every floor plus a combined total, floors sorted
// by name for stable output.
func SummarizeHouse(h *House) []FloorSummary {
	summaries := make([]FloorSummary, 0, 2)
	for _, f := range h.Floors() {
		summaries = append(summaries, Summarize(f))
	}
	sort.Slice(summaries, func(i, j int) bool { return summaries[i].Name < summaries[j].Name })
	return summaries
}
