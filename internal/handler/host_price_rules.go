package handler

import (
    "errors"
    "net/http"
    "time"

    "github.com/labstack/echo/v4"

    "github.com/iliyamo/studio-booking/internal/booking"
    "github.com/iliyamo/studio-booking/internal/model"
    "github.com/iliyamo/studio-booking/internal/repository"
)

type priceRulePayload struct {
    RuleType   string   `json:"rule_type"`
    Weekday    *int     `json:"weekday,omitempty"` // 0=Sunday .. 6=Saturday
    StartHour  string   `json:"start_hour,omitempty"`
    EndHour    string   `json:"end_hour,omitempty"`
    Multiplier *float64 `json:"multiplier,omitempty"`
    FlatFee    *int64   `json:"flat_fee,omitempty"`
    Note       string   `json:"note,omitempty"`
}

type priceRuleView struct {
    ID         uint64   `json:"id"`
    RuleType   string   `json:"rule_type"`
    Weekday    *int     `json:"weekday,omitempty"`
    StartHour  string   `json:"start_hour,omitempty"`
    EndHour    string   `json:"end_hour,omitempty"`
    Multiplier *float64 `json:"multiplier,omitempty"`
    FlatFee    *int64   `json:"flat_fee,omitempty"`
    Note       string   `json:"note,omitempty"`
}

// ListPriceRules handles GET /v1/host/rooms/:id/price-rules.
func (h *HostHandler) ListPriceRules(c echo.Context) error {
    room := h.ownedRoom(c)
    if room == nil {
        return nil
    }
    rules, err := h.RuleRepo.RulesByRoom(c.Request().Context(), room.ID)
    if err != nil {
        return c.JSON(http.StatusInternalServerError, echo.Map{"error": "database error"})
    }
    out := make([]priceRuleView, 0, len(rules))
    for _, r := range rules {
        v := priceRuleView{ID: r.ID, RuleType: r.RuleType, Multiplier: r.Multiplier, FlatFee: r.FlatFee, Note: r.Note}
        if r.Weekday != nil {
            wd := int(*r.Weekday)
            v.Weekday = &wd
        }
        if r.StartHour != nil {
            v.StartHour = r.StartHour.String()
        }
        if r.EndHour != nil {
            v.EndHour = r.EndHour.String()
        }
        out = append(out, v)
    }
    return c.JSON(http.StatusOK, echo.Map{"room_id": room.ID, "rules": out})
}

// CreatePriceRule handles POST /v1/host/rooms/:id/price-rules.  The
// rule is validated up front with the same checks the tariff engine
// applies lazily, so a rule that would break pricing never lands.  A
// second flat-fee rule for the same weekday is rejected with 409.
func (h *HostHandler) CreatePriceRule(c echo.Context) error {
    room := h.ownedRoom(c)
    if room == nil {
        return nil
    }
    var body priceRulePayload
    if err := c.Bind(&body); err != nil {
        return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request body"})
    }

    rule, err := body.toModel(room.ID)
    if err != nil {
        return c.JSON(http.StatusBadRequest, echo.Map{"error": err.Error()})
    }
    if err := booking.ValidateRule(*rule); err != nil {
        var cfgErr *booking.RuleConfigError
        if errors.As(err, &cfgErr) {
            return c.JSON(http.StatusBadRequest, echo.Map{"error": cfgErr.Detail})
        }
        return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid rule"})
    }

    if err := h.RuleRepo.Create(c.Request().Context(), rule); err != nil {
        if errors.Is(err, repository.ErrDuplicateFlatFee) {
            return c.JSON(http.StatusConflict, echo.Map{"error": "a flat-fee rule already exists for this weekday"})
        }
        return c.JSON(http.StatusInternalServerError, echo.Map{"error": "database error"})
    }
    return c.JSON(http.StatusCreated, echo.Map{"id": rule.ID})
}

func (p priceRulePayload) toModel(roomID uint64) (*model.PriceRule, error) {
    rule := &model.PriceRule{
        RoomID:     roomID,
        RuleType:   p.RuleType,
        Multiplier: p.Multiplier,
        FlatFee:    p.FlatFee,
        Note:       p.Note,
    }
    if p.Weekday != nil {
        if *p.Weekday < 0 || *p.Weekday > 6 {
            return nil, errors.New("weekday must be 0 (Sunday) .. 6 (Saturday)")
        }
        wd := time.Weekday(*p.Weekday)
        rule.Weekday = &wd
    }
    if p.StartHour != "" {
        cm, err := model.ParseClock(p.StartHour)
        if err != nil {
            return nil, err
        }
        rule.StartHour = &cm
    }
    if p.EndHour != "" {
        cm, err := model.ParseClock(p.EndHour)
        if err != nil {
            return nil, err
        }
        rule.EndHour = &cm
    }
    return rule, nil
}

// DeletePriceRule handles DELETE /v1/host/rooms/:id/price-rules/:ruleId.
func (h *HostHandler) DeletePriceRule(c echo.Context) error {
    room := h.ownedRoom(c)
    if room == nil {
        return nil
    }
    ruleID, ok := paramID(c, "ruleId")
    if !ok {
        return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid rule id"})
    }
    err := h.RuleRepo.Delete(c.Request().Context(), room.ID, ruleID)
    if errors.Is(err, repository.ErrRuleNotFound) {
        return c.JSON(http.StatusNotFound, echo.Map{"error": "price rule not found"})
    }
    if err != nil {
        return c.JSON(http.StatusInternalServerError, echo.Map{"error": "database error"})
    }
    return c.NoContent(http.StatusNoContent)
}
