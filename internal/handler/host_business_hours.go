package handler

import (
    "fmt"
    "net/http"

    "github.com/labstack/echo/v4"

    "github.com/iliyamo/studio-booking/internal/model"
)

// businessHourRow is the wire form of one weekday's schedule row.
// Open/close travel as "HH:MM"; a close of "00:00" means midnight at
// the end of the day (24:00).
type businessHourRow struct {
    DayIndex int    `json:"day_index"`
    Open     string `json:"open,omitempty"`
    Close    string `json:"close,omitempty"`
    Holiday  bool   `json:"holiday"`
}

type businessHoursPayload struct {
    Rows []businessHourRow `json:"rows"`
}

// GetBusinessHours handles GET /v1/host/rooms/:id/business-hours.  It
// returns all seven rows; weekdays never configured default to
// 09:00-18:00 open so the host edit form starts from something
// sensible.
func (h *HostHandler) GetBusinessHours(c echo.Context) error {
    room := h.ownedRoom(c)
    if room == nil {
        return nil
    }
    sched, err := h.HourRepo.WeeklySchedule(c.Request().Context(), room.ID)
    if err != nil {
        return c.JSON(http.StatusInternalServerError, echo.Map{"error": "database error"})
    }

    configured := false
    for i := 1; i <= 7; i++ {
        if sched.Row(i) != nil {
            configured = true
            break
        }
    }

    rows := make([]businessHourRow, 0, 7)
    for i := 1; i <= 7; i++ {
        row := sched.Row(i)
        switch {
        case row == nil && !configured:
            rows = append(rows, businessHourRow{DayIndex: i, Open: "09:00", Close: "18:00"})
        case row == nil || row.Holiday:
            rows = append(rows, businessHourRow{DayIndex: i, Holiday: true})
        default:
            rows = append(rows, businessHourRow{DayIndex: i, Open: row.Open.String(), Close: row.Close.String()})
        }
    }
    return c.JSON(http.StatusOK, echo.Map{"room_id": room.ID, "rows": rows})
}

// PutBusinessHours handles PUT /v1/host/rooms/:id/business-hours.  The
// payload replaces the whole week: rows outside 1..7 are ignored, a
// duplicated day_index keeps the last occurrence, and weekdays absent
// from the payload become holidays.  Open days must satisfy
// open < close, where a close of 00:00 counts as 24:00.
func (h *HostHandler) PutBusinessHours(c echo.Context) error {
    room := h.ownedRoom(c)
    if room == nil {
        return nil
    }
    var body businessHoursPayload
    if err := c.Bind(&body); err != nil {
        return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request body"})
    }

    var week [7]model.BusinessHourRow
    for i := range week {
        week[i] = model.BusinessHourRow{RoomID: room.ID, DayIndex: i + 1, Holiday: true}
    }
    for _, row := range body.Rows {
        if row.DayIndex < 1 || row.DayIndex > 7 {
            continue
        }
        parsed, err := parseBusinessHourRow(room.ID, row)
        if err != nil {
            return c.JSON(http.StatusBadRequest, echo.Map{"error": err.Error()})
        }
        week[row.DayIndex-1] = parsed
    }

    if err := h.HourRepo.ReplaceWeek(c.Request().Context(), room.ID, week); err != nil {
        return c.JSON(http.StatusInternalServerError, echo.Map{"error": "database error"})
    }
    return c.JSON(http.StatusOK, echo.Map{"room_id": room.ID, "updated": true})
}

func parseBusinessHourRow(roomID uint64, row businessHourRow) (model.BusinessHourRow, error) {
    out := model.BusinessHourRow{RoomID: roomID, DayIndex: row.DayIndex, Holiday: row.Holiday}
    if row.Holiday {
        return out, nil
    }
    if row.Open == "" || row.Close == "" {
        return out, fmt.Errorf("open and close are required on open days (day_index=%d)", row.DayIndex)
    }
    open, err := model.ParseClock(row.Open)
    if err != nil {
        return out, fmt.Errorf("day_index=%d: %v", row.DayIndex, err)
    }
    closeAt, err := model.ParseClock(row.Close)
    if err != nil {
        return out, fmt.Errorf("day_index=%d: %v", row.DayIndex, err)
    }
    effectiveClose := closeAt
    if closeAt == 0 {
        effectiveClose = model.EndOfDay
    }
    if open >= effectiveClose {
        return out, fmt.Errorf("open must be before close (day_index=%d)", row.DayIndex)
    }
    out.Open = &open
    out.Close = &closeAt
    return out, nil
}
