package homebudget

import (
	"encoding/json"
	"fmt"
	"io"

	"homebudget/fiscal"
)

// This file persists the mutable state as a single human-readable JSON
// document. The catalog and the entities' line items are code-defined
// and never serialized; Load reattaches stored actuals to them.

// jstate is the on-disk shape of the state file.
type jstate struct {
	Years          []fiscal.Year                    `json:"years"`
	Actuals        map[fiscal.Year]MonthlyActuals   `json:"actuals"`
	Assets         []jvalued                        `json:"assets"`
	Liabilities    []jvalued                        `json:"liabilities"`
	Goals          []jgoal                          `json:"goals"`
	Entities       map[string]MonthlyActuals        `json:"entities"`
	OpeningBalance int64                            `json:"opening_balance"`
	ExtraSaving    int64                            `json:"extra_saving,omitempty"`
}

type jvalued struct {
	ID    string `json:"id"`
	Value int64  `json:"value"`
}

type jgoal struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Target   int64  `json:"target"`
	Saved    int64  `json:"saved"`
	Deadline string `json:"deadline"`
	Icon     string `json:"icon"`
}

// Save writes the state file to w.
func Save(w io.Writer, s *State) error {
	js := jstate{
		Years:          s.Years,
		Actuals:        s.Actuals,
		Entities:       make(map[string]MonthlyActuals, len(s.Entities)),
		OpeningBalance: s.OpeningBalance,
		ExtraSaving:    s.ExtraSaving,
	}
	for _, a := range s.Assets {
		js.Assets = append(js.Assets, jvalued{ID: a.ID, Value: a.Value})
	}
	for _, l := range s.Liabilities {
		js.Liabilities = append(js.Liabilities, jvalued{ID: l.ID, Value: l.Value})
	}
	for _, g := range s.Goals {
		js.Goals = append(js.Goals, jgoal{ID: g.ID, Name: g.Name, Target: g.Target, Saved: g.Saved, Deadline: g.Deadline, Icon: g.Icon})
	}
	for _, e := range s.Entities {
		js.Entities[e.ID] = e.Actuals
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(js); err != nil {
		return fmt.Errorf("cannot encode state: %w", err)
	}
	return nil
}

// Load reads a state file from r into a fresh seeded state, overlaying
// the stored values onto the built-in catalog, net-worth sheet, goals
// and entities.
func Load(r io.Reader) (*State, error) {
	var js jstate
	if err := json.NewDecoder(r).Decode(&js); err != nil {
		return nil, fmt.Errorf("cannot decode state: %w", err)
	}

	s := DefaultState()
	s.Years = nil
	s.Actuals = make(map[fiscal.Year]MonthlyActuals)
	for _, y := range js.Years {
		s.EnsureYear(y)
	}
	for y, actuals := range js.Actuals {
		s.EnsureYear(y)
		s.Actuals[y] = actuals
	}

	for _, a := range js.Assets {
		s.SetAssetValue(a.ID, a.Value)
	}
	for _, l := range js.Liabilities {
		s.SetLiabilityValue(l.ID, l.Value)
	}
	if js.Goals != nil {
		s.Goals = nil
		for _, g := range js.Goals {
			if err := s.AddGoal(Goal{ID: g.ID, Name: g.Name, Target: g.Target, Saved: g.Saved, Deadline: g.Deadline, Icon: g.Icon}); err != nil {
				return nil, fmt.Errorf("invalid goal %q in state file: %w", g.ID, err)
			}
		}
	}
	for id, actuals := range js.Entities {
		if e := s.Entity(id); e != nil && actuals != nil {
			e.Actuals = actuals
		}
	}
	s.OpeningBalance = js.OpeningBalance
	s.ExtraSaving = js.ExtraSaving
	return s, nil
}
