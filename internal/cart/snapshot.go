package cart

import (
	"encoding/json"
	"fmt"
	"github.com/nikolayk812/luxe-storefront/internal/domain"
)

// decodeSnapshot parses a persisted cart. Lines with an empty id or a
// non-positive quantity make the whole snapshot invalid; repeated ids are
// merged into the first occurrence.
func decodeSnapshot(raw []byte) ([]domain.CartLine, error) {
	var lines []domain.CartLine
	if err := json.Unmarshal(raw, &lines); err != nil {
		return nil, fmt.Errorf("json.Unmarshal: %w", err)
	}

	var result []domain.CartLine
	seen := make(map[domain.ProductID]int, len(lines))

	for i, l := range lines {
		if l.ID == "" {
			return nil, fmt.Errorf("line[%d] has empty id", i)
		}
		if l.Quantity <= 0 {
			return nil, fmt.Errorf("line[%d] quantity[%d] is not positive", i, l.Quantity)
		}

		if j, ok := seen[l.ID]; ok {
			result[j].Quantity += l.Quantity
			continue
		}

		seen[l.ID] = len(result)
		result = append(result, l)
	}

	return result, nil
}
