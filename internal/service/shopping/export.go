package shopping

import (
	"bytes"
	"context"
	"encoding/csv"
	"fmt"
	"log/slog"
	"strconv"
	"strings"

	"github.com/heartmarshall/pantry-backend/internal/domain"
	"github.com/heartmarshall/pantry-backend/pkg/ctxutil"
)

var csvHeader = []string{"name", "quantity", "unit", "category", "priority", "estimated_price", "checked", "reason"}

// ExportCSV renders the whole shopping list as CSV with a header row.
func (s *Service) ExportCSV(ctx context.Context) ([]byte, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	entries, err := s.entries.List(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("list shopping entries: %w", err)
	}

	var buf bytes.Buffer
	w := csv.NewWriter(&buf)
	if err := w.Write(csvHeader); err != nil {
		return nil, fmt.Errorf("write csv header: %w", err)
	}
	for _, e := range entries {
		record := []string{
			csvText(e.Name),
			strconv.FormatFloat(e.Quantity, 'f', -1, 64),
			csvText(e.Unit),
			csvText(e.Category),
			e.Priority.String(),
			e.EstimatedPrice.StringFixed(2),
			strconv.FormatBool(e.IsChecked),
			csvText(e.Reason),
		}
		if err := w.Write(record); err != nil {
			return nil, fmt.Errorf("write csv row: %w", err)
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return nil, fmt.Errorf("flush csv: %w", err)
	}

	s.log.InfoContext(ctx, "shopping list exported",
		slog.String("user_id", userID.String()),
		slog.Int("count", len(entries)),
	)

	return buf.Bytes(), nil
}

// csvText quotes user text that a spreadsheet would read as a formula.
func csvText(v string) string {
	if v != "" && strings.ContainsRune("=+-@\t\r", rune(v[0])) {
		return "'" + v
	}
	return v
}
