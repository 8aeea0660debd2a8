package repo

import (
	"context"

	"goodheart/internal/domain"
	"goodheart/internal/infra"
	"goodheart/internal/sqlinline"
)

// DonorRepositoryPG implements domain.DonorRepository backed by PostgreSQL.
type DonorRepositoryPG struct {
	db infra.SQLExecutor
}

func NewDonorRepository(db infra.SQLExecutor) *DonorRepositoryPG {
	return &DonorRepositoryPG{db: db}
}

func (r *DonorRepositoryPG) GetByID(ctx context.Context, id string) (*domain.Donor, error) {
	var donor domain.Donor
	row := r.db.QueryRow(ctx, sqlinline.QGetDonor, id)
	if err := row.Scan(&donor.ID, &donor.Name, &donor.Email, &donor.CreatedAt); err != nil {
		if infra.IsNoRows(err) {
			return nil, domain.ErrDonorNotFound
		}
		return nil, err
	}
	return &donor, nil
}

func (r *DonorRepositoryPG) List(ctx context.Context) ([]domain.Donor, error) {
	rows, err := r.db.Query(ctx, sqlinline.QListDonors)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var items []domain.Donor
	for rows.Next() {
		var donor domain.Donor
		if err := rows.Scan(&donor.ID, &donor.Name, &donor.Email, &donor.CreatedAt); err != nil {
			return nil, err
		}
		items = append(items, donor)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return items, nil
}

// NGORepositoryPG implements domain.NGORepository backed by PostgreSQL.
type NGORepositoryPG struct {
	db infra.SQLExecutor
}

func NewNGORepository(db infra.SQLExecutor) *NGORepositoryPG {
	return &NGORepositoryPG{db: db}
}

func (r *NGORepositoryPG) GetByID(ctx context.Context, id string) (*domain.NGO, error) {
	var ngo domain.NGO
	row := r.db.QueryRow(ctx, sqlinline.QGetNGO, id)
	if err := row.Scan(&ngo.ID, &ngo.Name, &ngo.Email, &ngo.CreatedAt); err != nil {
		if infra.IsNoRows(err) {
			return nil, domain.ErrNGONotFound
		}
		return nil, err
	}
	return &ngo, nil
}

func (r *NGORepositoryPG) List(ctx context.Context) ([]domain.NGO, error) {
	rows, err := r.db.Query(ctx, sqlinline.QListNGOs)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var items []domain.NGO
	for rows.Next() {
		var ngo domain.NGO
		if err := rows.Scan(&ngo.ID, &ngo.Name, &ngo.Email, &ngo.CreatedAt); err != nil {
			return nil, err
		}
		items = append(items, ngo)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return items, nil
}

var (
	_ domain.DonorRepository = (*DonorRepositoryPG)(nil)
	_ domain.NGORepository   = (*NGORepositoryPG)(nil)
)
