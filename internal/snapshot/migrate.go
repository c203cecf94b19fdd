package snapshot

import (
	"encoding/json"
	"fmt"

	"github.com/LeJamon/goMFS/internal/core/state"
)

// v1AutoBuyers maps the version 1 "autobuyers" keys to AutoBuy ids.
var v1AutoBuyers = map[string]string{
	"rods":     state.Rod,
	"nets":     state.Net,
	"bait":     state.Bait,
	"multiply": state.ActionMultiply,
	"ascend":   state.ActionAscend,
}

// migrateV1 rewrites a version 1 state document into the current layout.
// Version 1 kept one-time unlocks as boolean fields of generalUpgrades (and
// autoCollectNets at the top level) and auto-buy flags in "autobuyers".
func migrateV1(raw []byte) ([]byte, error) {
	var doc map[string]json.RawMessage
	if err := json.Unmarshal(raw, &doc); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformed, err)
	}

	unlocked := map[string]bool{}
	general := map[string]json.RawMessage{}
	if gu, ok := doc["generalUpgrades"]; ok {
		if err := json.Unmarshal(gu, &general); err != nil {
			return nil, fmt.Errorf("%w: generalUpgrades: %v", ErrMalformed, err)
		}
	}
	for k, v := range general {
		var b bool
		if json.Unmarshal(v, &b) != nil {
			continue
		}
		if b {
			unlocked[k] = true
		}
		delete(general, k)
	}
	if v, ok := doc["autoCollectNets"]; ok {
		var b bool
		if json.Unmarshal(v, &b) == nil && b {
			unlocked[state.AutoCollectNets] = true
		}
		delete(doc, "autoCollectNets")
	}
	if _, ok := general["catchFishMultiplier"]; !ok {
		if v, ok := doc["catchFishMultiplier"]; ok {
			general["catchFishMultiplier"] = v
		}
	}
	delete(doc, "catchFishMultiplier")

	if err := setJSON(general, "unlocked", unlocked); err != nil {
		return nil, err
	}
	if err := setJSON(doc, "generalUpgrades", general); err != nil {
		return nil, err
	}

	if ab, ok := doc["autobuyers"]; ok {
		var old map[string]bool
		if err := json.Unmarshal(ab, &old); err != nil {
			return nil, fmt.Errorf("%w: autobuyers: %v", ErrMalformed, err)
		}
		autoBuy := map[string]bool{}
		for k, v := range old {
			if id, ok := v1AutoBuyers[k]; ok {
				autoBuy[id] = v
			}
		}
		if err := setJSON(doc, "autoBuy", autoBuy); err != nil {
			return nil, err
		}
		delete(doc, "autobuyers")
	}
	delete(doc, "fishPerSecond")

	out, err := json.Marshal(doc)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal migrated state: %w", err)
	}
	return out, nil
}

func setJSON(m map[string]json.RawMessage, key string, v any) error {
	data, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("failed to marshal %s: %w", key, err)
	}
	m[key] = data
	return nil
}
