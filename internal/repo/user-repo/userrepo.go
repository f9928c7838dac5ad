package userrepo

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/smdental/dentismo/internal/domain"
	"github.com/smdental/dentismo/internal/pg"
	"go.uber.org/zap"
)

type Repository struct {
	db pg.Database
}

func New(db pg.Database) *Repository {
	return &Repository{
		db: db,
	}
}

func (repo *Repository) FindByUsername(ctx context.Context, username string) (*domain.User, error) {
	var user domain.User
	err := repo.db.QueryRow(ctx, "SELECT id, name, username, password_hash FROM users WHERE username = $1", username).
		Scan(&user.ID, &user.Name, &user.Username, &user.PasswordHash)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		zap.L().Error("can't find user", zap.Error(err))
		return nil, err
	}
	return &user, nil
}

func (repo *Repository) Create(ctx context.Context, user *domain.User) (*domain.User, error) {
	query := `
		INSERT INTO users (name, username, password_hash)
		VALUES ($1, $2, $3)
		RETURNING id
	`
	err := repo.db.QueryRow(ctx, query, user.Name, user.Username, user.PasswordHash).Scan(&user.ID)
	if err != nil {
		zap.L().Error("can't save user", zap.Error(err))
		return nil, pg.ClassifyError(err)
	}
	return user, nil
}

// Update replaces the mutable fields wholesale. It reports false, not an
// error, when no row matched currentUsername.
func (repo *Repository) Update(ctx context.Context, currentUsername, name, username, passwordHash string) (bool, error) {
	query := `
		UPDATE users
		SET name = $1, username = $2, password_hash = $3
		WHERE username = $4
	`
	tag, err := repo.db.Exec(ctx, query, name, username, passwordHash, currentUsername)
	if err != nil {
		zap.L().Error("can't update user", zap.Error(err))
		return false, pg.ClassifyError(err)
	}
	return tag.RowsAffected() > 0, nil
}

func (repo *Repository) Delete(ctx context.Context, username string) error {
	_, err := repo.db.Exec(ctx, "DELETE FROM users WHERE username = $1", username)
	if err != nil {
		zap.L().Error("can't delete user", zap.Error(err))
		return err
	}
	return nil
}
