package converter

import (
	"branch-reservations/internal/domain/product"
	"branch-reservations/internal/domain/user"
	"branch-reservations/internal/infra/pgsql"
	"branch-reservations/internal/pkg/errs"
	"branch-reservations/internal/pkg/pgconv"
)

func ProductFromRow(row pgsql.Products) (product.Product, error) {
	price, err := pgconv.DecimalFromText(row.UnitPrice)
	if err != nil {
		return product.Product{}, errs.Wrapf(err, "product %s price %q", row.Code, row.UnitPrice)
	}
	return product.Product{
		Code:        row.Code,
		Description: row.Description,
		UnitPrice:   price,
		UpdatedAt:   pgconv.TimeFromPgtype(row.UpdatedAt),
	}, nil
}

func UserToUpsertParams(u *user.User) pgsql.UpsertUserParams {
	b := u.Branch()
	return pgsql.UpsertUserParams{
		ID:            u.ID(),
		Username:      u.Username().Value(),
		DisplayName:   u.DisplayName(),
		PasswordHash:  u.PasswordHash(),
		Role:          u.Role().String(),
		Branch:        b.Name,
		BranchAddress: b.Address,
		BranchHours:   b.Hours,
		BranchPhone:   b.Phone,
		IsActive:      u.IsActive(),
	}
}
