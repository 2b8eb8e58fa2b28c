package scheduler

import (
	"testing"

	"github.com/TitoKamau053/university-timetable/app/models"
)

func TestWeeksOverlap(t *testing.T) {
	cases := []struct {
		a, b models.WeekType
		want bool
	}{
		{models.WeekAll, models.WeekAll, true},
		{models.WeekAll, models.WeekOdd, true},
		{models.WeekEven, models.WeekAll, true},
		{models.WeekOdd, models.WeekOdd, true},
		{models.WeekOdd, models.WeekEven, false},
		{models.WeekEven, models.WeekOdd, false},
	}
	for _, tc := range cases {
		if got := weeksOverlap(tc.a, tc.b); got != tc.want {
			t.Fatalf("weeksOverlap(%s, %s) = %v, want %v", tc.a, tc.b, got, tc.want)
		}
	}
}

func TestRoomFits(t *testing.T) {
	lab := models.Room{ID: "r1", Capacity: 40, RoomType: models.RoomLab}
	normal := models.Room{ID: "r2", Capacity: 40, RoomType: models.RoomNormal}
	labUnit := models.Unit{ID: "u1", RequiresLab: true}
	plainUnit := models.Unit{ID: "u2"}
	group := models.StudentGroup{ID: "g1", GroupSize: 35}
	bigGroup := models.StudentGroup{ID: "g2", GroupSize: 45}

	if !roomFits(lab, labUnit, group) {
		t.Fatal("lab unit should fit a large enough lab")
	}
	if roomFits(normal, labUnit, group) {
		t.Fatal("lab unit must not fit a normal room")
	}
	if roomFits(lab, plainUnit, group) {
		t.Fatal("plain unit must not take a lab room")
	}
	if roomFits(normal, plainUnit, bigGroup) {
		t.Fatal("room below group size must not fit")
	}
	if !roomFits(normal, plainUnit, group) {
		t.Fatal("plain unit should fit a normal room with capacity")
	}
}

func TestOccupancyBookWeekAware(t *testing.T) {
	book := newOccupancyBook()
	book.book(resourceRoom, "r1", "s1", models.WeekOdd)

	if !book.occupied(resourceRoom, "r1", "s1", models.WeekOdd) {
		t.Fatal("odd booking should block another odd booking")
	}
	if !book.occupied(resourceRoom, "r1", "s1", models.WeekAll) {
		t.Fatal("odd booking should block an all-weeks booking")
	}
	if book.occupied(resourceRoom, "r1", "s1", models.WeekEven) {
		t.Fatal("odd booking should leave even weeks free")
	}
	if book.occupied(resourceRoom, "r1", "s2", models.WeekOdd) {
		t.Fatal("a different slot should be free")
	}
	if book.occupied(resourceLecturer, "r1", "s1", models.WeekOdd) {
		t.Fatal("a different resource kind should be free")
	}
}
