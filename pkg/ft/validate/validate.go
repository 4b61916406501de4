// Package validate checks element trees against the HTML attribute tables
// and optionally heals what it can: unknown attribute names are fuzzy-matched
// back onto the allowlist, unknown tags are dropped.
//
// Modes form a fallback chain: none skips everything, static consults the
// in-process allowlist, remote asks the W3C nu validator and accepts the
// attribute outright when the network is unavailable, so an outage never
// rejects markup that might be fine.
package validate

import (
	"log/slog"
	"strings"

	lru "github.com/hashicorp/golang-lru/v2"

	"github.com/alucardeht/fasttags/pkg/ft"
)

const verdictCacheSize = 4096

// Validator validates and optionally heals ft trees.
type Validator struct {
	cfg      ft.Config
	verdicts *lru.Cache[string, bool]
	remote   *remoteChecker
	log      *slog.Logger
}

// New builds a Validator for the given config.
func New(cfg ft.Config) (*Validator, error) {
	cache, err := lru.New[string, bool](verdictCacheSize)
	if err != nil {
		return nil, err
	}
	return &Validator{
		cfg:      cfg,
		verdicts: cache,
		remote:   newRemoteChecker(),
		log:      slog.Default().With("component", "validate"),
	}, nil
}

// ValidateAndHeal checks a node under mode and returns the (possibly healed)
// node. A nil result means the node was dropped. Non-element nodes pass
// through untouched.
func (v *Validator) ValidateAndHeal(node ft.Node, mode string) (ft.Node, error) {
	if mode == "" {
		mode = v.cfg.ValidateMode
	}
	if mode == ft.ModeNone {
		return node, nil
	}

	el, ok := node.(*ft.FT)
	if !ok {
		return node, nil
	}

	if !ft.HTMLTags[el.Tag] && !strings.Contains(el.Tag, "-") {
		v.log.Warn("unknown tag", "tag", el.Tag)
		if v.cfg.AutoHeal {
			v.log.Info("healing: dropping unknown tag", "tag", el.Tag)
			return nil, nil
		}
		return el, ft.Curative("unknown tag <"+el.Tag+">",
			"Use a tag from the HTML5 set, or a custom element name containing a dash.",
			"Enable AutoHeal to drop unknown tags instead of failing.")
	}

	kept := el.Attrs[:0]
	for _, a := range el.Attrs {
		valid, err := v.checkAttr(el.Tag, a.Key, mode)
		if err != nil {
			return el, err
		}
		if valid {
			kept = append(kept, a)
			continue
		}
		if v.cfg.AutoHeal && v.cfg.HealFuzzy {
			if healed, ok := nearestAttr(a.Key, el.Tag); ok {
				v.log.Info("healing: renamed attribute",
					"tag", el.Tag, "from", a.Key, "to", healed)
				kept = append(kept, ft.Attribute{Key: healed, Val: a.Val})
				continue
			}
		}
		if v.cfg.AutoHeal {
			v.log.Info("healing: dropped attribute", "tag", el.Tag, "attr", a.Key)
			continue
		}
		v.log.Warn("invalid attribute", "tag", el.Tag, "attr", a.Key)
		kept = append(kept, a)
	}
	el.Attrs = kept

	healed := el.Children[:0]
	for _, child := range el.Children {
		out, err := v.ValidateAndHeal(child, mode)
		if err != nil {
			return el, err
		}
		if out != nil {
			healed = append(healed, out)
		}
	}
	el.Children = healed

	return el, nil
}

// checkAttr reports whether attr is valid on tag under mode. Verdicts are
// memoized since trees repeat the same tag/attr pairs heavily.
func (v *Validator) checkAttr(tag, attr, mode string) (bool, error) {
	if strings.HasPrefix(attr, "data-") || strings.HasPrefix(attr, "aria-") || GlobalAttrs[attr] {
		return true, nil
	}

	key := mode + "\x00" + tag + "\x00" + attr
	if verdict, ok := v.verdicts.Get(key); ok {
		return verdict, nil
	}

	var verdict bool
	switch mode {
	case ft.ModeStatic:
		verdict = staticAllowed(tag, attr)
	case ft.ModeRemote:
		remote, err := v.remote.attrAllowed(tag, attr)
		if err != nil {
			// Network trouble must not produce false negatives. The
			// verdict is not cached so a later call retries the
			// validator instead of pinning the outage.
			v.log.Warn("remote validation unavailable, accepting attribute",
				"tag", tag, "attr", attr, "error", err)
			return true, nil
		}
		verdict = remote
	default:
		verdict = true
	}

	v.verdicts.Add(key, verdict)
	return verdict, nil
}

func staticAllowed(tag, attr string) bool {
	allowed, ok := ValidAttrs[tag]
	return ok && allowed[attr]
}
