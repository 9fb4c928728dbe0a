package commands

//go:generate go run go.uber.org/mock/mockgen -source=catalog.go -destination=../../../tests/mock/commands/catalog_mock.go -package=commandsmock

import (
	"context"
	"io"
	"log/slog"

	"branch-reservations/internal/domain/access"
	"branch-reservations/internal/domain/product"
	"branch-reservations/internal/pkg/clock"
	"branch-reservations/internal/pkg/errs"
	"branch-reservations/internal/usecase/shared"
)

var ErrInvalidPriceSheet = errs.New("invalid price sheet")

// PriceRow is one data line of an uploaded sheet, still unparsed.
type PriceRow struct {
	Line  int
	Code  string
	Price string
}

type PriceSheetParser interface {
	Parse(r io.Reader) ([]PriceRow, error)
}

type ImportResult struct {
	Rows    int `json:"rows"`
	Updated int `json:"updated"`
	Skipped int `json:"skipped"`
}

type CatalogCommands interface {
	ImportPrices(ctx context.Context, actor access.Actor, r io.Reader) (*ImportResult, error)
}

type catalogCommandsImpl struct {
	uow    shared.UnitOfWork
	parser PriceSheetParser
	clock  clock.Clock
}

func NewCatalogCommands(uow shared.UnitOfWork, parser PriceSheetParser, clk clock.Clock) CatalogCommands {
	return &catalogCommandsImpl{uow: uow, parser: parser, clock: clk}
}

// ImportPrices applies every row on its own; a bad row never undoes the others.
func (c *catalogCommandsImpl) ImportPrices(ctx context.Context, actor access.Actor, r io.Reader) (*ImportResult, error) {
	if err := access.RequireAdmin(actor); err != nil {
		return nil, errs.Mark(err, ErrForbidden)
	}

	rows, err := c.parser.Parse(r)
	if err != nil {
		return nil, invalid(err, ErrInvalidPriceSheet)
	}

	result := &ImportResult{Rows: len(rows)}
	for _, row := range rows {
		updated, err := c.applyRow(ctx, row)
		if err != nil {
			slog.Warn("price row skipped", "line", row.Line, "code", row.Code, "error", err.Error())
		}
		if updated {
			result.Updated++
		} else {
			result.Skipped++
		}
	}

	slog.Info("price import finished",
		"rows", result.Rows,
		"updated", result.Updated,
		"skipped", result.Skipped,
		"agent", actor.Agent())
	return result, nil
}

func (c *catalogCommandsImpl) applyRow(ctx context.Context, row PriceRow) (bool, error) {
	code, err := product.NormalizeCode(row.Code)
	if err != nil {
		return false, err
	}
	price, err := product.ParsePrice(row.Price)
	if err != nil {
		return false, err
	}

	var updated bool
	err = c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		var err error
		updated, err = tx.Products().UpdatePrice(ctx, code, price, c.clock.Now())
		return err
	})
	if err != nil {
		return false, err
	}
	return updated, nil
}
