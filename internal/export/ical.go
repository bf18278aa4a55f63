// Package export renders a user's events as an iCalendar feed.
package export

import (
	"bytes"
	"fmt"
	"io"
	"maps"
	"slices"
	"strings"
	"time"

	"cloud.google.com/go/civil"
	"github.com/emersion/go-ical"

	"github.com/mmynk/lifecubes/internal/models"
	"github.com/mmynk/lifecubes/internal/weekgrid"
)

const (
	propVersion      = "VERSION"
	propProdID       = "PRODID"
	propCalName      = "X-WR-CALNAME"
	propCalScale     = "CALSCALE"
	propMethod       = "METHOD"
	propRefresh      = "REFRESH-INTERVAL"
	propUID          = "UID"
	propDTStamp      = "DTSTAMP"
	propDTStart      = "DTSTART"
	propDTEnd        = "DTEND"
	propSummary      = "SUMMARY"
	propDescription  = "DESCRIPTION"
	propCategories   = "CATEGORIES"
	propLastModified = "LAST-MODIFIED"
)

const (
	prodID  = "-//Life in Cubes//Events//EN"
	calName = "Life in Cubes"
	uidHost = "lifecubes"
	refresh = 12 * time.Hour
)

// Feed is the input of a calendar export.
type Feed struct {
	Birth  civil.Date
	Model  weekgrid.Model
	Events []models.Event
	// Now stamps every VEVENT.
	Now    time.Time
}

// Calendar builds one all-day VEVENT per event, dated where its placement
// falls under the feed's model.
func (f Feed) Calendar() *ical.Calendar {
	cal := ical.NewCalendar()
	cal.Props.SetText(propVersion, "2.0")
	cal.Props.SetText(propProdID, prodID)
	cal.Props.SetText(propCalScale, "GREGORIAN")
	cal.Props.SetText(propMethod, "PUBLISH")
	cal.Props.SetText(propCalName, calName)

	refreshProp := ical.NewProp(propRefresh)
	refreshProp.SetDuration(refresh)
	cal.Props.Set(refreshProp)

	stamp := ical.NewProp(propDTStamp)
	stamp.SetDateTime(f.Now.UTC())

	for i := range f.Events {
		e := &f.Events[i]
		date := f.Model.DateOf(f.Birth, e.Placement())

		event := ical.NewEvent()
		event.Props.SetText(propUID, fmt.Sprintf("%s@%s", e.ID, uidHost))
		event.Props.Set(stamp)
		event.Props.SetText(propSummary, e.Title)
		if e.Description != "" {
			event.Props.SetText(propDescription, e.Description)
		}

		start := ical.NewProp(propDTStart)
		start.SetDate(date.In(time.UTC))
		event.Props.Set(start)
		end := ical.NewProp(propDTEnd)
		end.SetDate(date.AddDays(1).In(time.UTC))
		event.Props.Set(end)

		for _, category := range categoriesOf(e) {
			prop := ical.NewProp(propCategories)
			prop.SetText(category)
			event.Props[propCategories] = append(event.Props[propCategories], *prop)
		}

		if e.UpdatedAt > 0 {
			modified := ical.NewProp(propLastModified)
			modified.SetDateTime(time.Unix(e.UpdatedAt, 0).UTC())
			event.Props.Set(modified)
		}

		cal.Children = append(cal.Children, event.Component)
	}
	return cal
}

func categoriesOf(e *models.Event) []string {
	var out []string
	if c, ok := models.CategoryByID(e.Icon); ok {
		out = append(out, c.Name)
	}
	return append(out, e.Tags...)
}

// Write encodes the feed to w. A feed without events is still a valid,
// empty calendar carrying the same calendar properties.
func (f Feed) Write(w io.Writer) error {
	cal := f.Calendar()
	var buf bytes.Buffer
	if len(cal.Children) == 0 {
		// The encoder refuses calendars without components.
		writeHeaderOnly(&buf, cal.Props)
	} else if err := ical.NewEncoder(&buf).Encode(cal); err != nil {
		return fmt.Errorf("failed to encode iCalendar data: %w", err)
	}
	_, err := buf.WriteTo(w)
	return err
}

// writeHeaderOnly writes a VCALENDAR holding only props, laid out the way
// ical.Encoder lays out properties.
func writeHeaderOnly(buf *bytes.Buffer, props ical.Props) {
	buf.WriteString("BEGIN:" + ical.CompCalendar + "\r\n")
	for _, name := range slices.Sorted(maps.Keys(props)) {
		for _, prop := range props[name] {
			buf.WriteString(prop.Name)
			for _, param := range slices.Sorted(maps.Keys(prop.Params)) {
				buf.WriteString(";" + param + "=" + strings.Join(prop.Params[param], ","))
			}
			buf.WriteString(":" + prop.Value + "\r\n")
		}
	}
	buf.WriteString("END:" + ical.CompCalendar + "\r\n")
}
