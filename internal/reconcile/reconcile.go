package reconcile

import (
	"github.com/Zuo-Peng/logdye/internal/group"
	"github.com/Zuo-Peng/logdye/internal/palette"
	"github.com/Zuo-Peng/logdye/internal/store"
)

type Result struct {
	// Settings holds every stored setting plus the ones created for this log.
	Settings map[string]store.Setting
	// IDs lists the identities of this log in first-appearance order.
	IDs []string
	// Created lists the ids that had no stored setting, in the same order.
	Created []string
}

// Reconcile keeps stored settings for known identities and creates an enabled
// setting for each new one, named after its latest name and colored with the
// first palette color no identity of this log uses yet.
func Reconcile(g group.Result, stored map[string]store.Setting, p palette.Palette) Result {
	res := Result{
		Settings: make(map[string]store.Setting, len(stored)+len(g.Identities)),
		IDs:      make([]string, 0, len(g.Identities)),
	}
	for id, s := range stored {
		res.Settings[id] = s
	}

	used := make(map[string]bool)
	for _, ident := range g.Identities {
		if s, ok := stored[ident.ID]; ok {
			used[s.Color] = true
		}
	}

	for _, ident := range g.Identities {
		res.IDs = append(res.IDs, ident.ID)
		if _, ok := stored[ident.ID]; ok {
			continue
		}
		color := firstUnused(p, used)
		used[color] = true
		res.Settings[ident.ID] = store.Setting{
			DisplayName: ident.LastName(),
			Color:       color,
			Enabled:     true,
		}
		res.Created = append(res.Created, ident.ID)
	}
	return res
}

func firstUnused(p palette.Palette, used map[string]bool) string {
	for _, v := range p.Values() {
		if !used[v] {
			return v
		}
	}
	return palette.DefaultColor
}
