package repository

import "github.com/profissaovlog/profissaovlog-api/internal/domain/entity"

// UserRepository defines keyed storage for accounts. Create assigns the
// next sequential id and the creation timestamp. GetByUsername and
// GetByEmail match case-insensitively. Lookups return (nil, nil) when
// the user does not exist.
type UserRepository interface {
	Create(u *entity.User) error
	GetByID(id int) (*entity.User, error)
	GetByUsername(username string) (*entity.User, error)
	GetByEmail(email string) (*entity.User, error)
	GetAll() ([]*entity.User, error)
}
