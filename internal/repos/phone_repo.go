package repos

import (
	"github.com/jmoiron/sqlx"

	"github.com/HARIGUTTI2002/refurbished-phone-app/internal/domain"
)

type PhoneRepo struct{ db *sqlx.DB }

func NewPhoneRepo(db *sqlx.DB) *PhoneRepo { return &PhoneRepo{db: db} }

const phoneCols = `
  id, brand, model, COALESCE(storage,'') AS storage, COALESCE(color,'') AS color,
  condition, base_price, stock, tags, price_overrides, listings,
  created_at, COALESCE(updated_at,'') AS updated_at`

// Get returns sql.ErrNoRows when the phone does not exist.
func (r *PhoneRepo) Get(id string) (domain.Phone, error) {
	var p domain.Phone
	err := r.db.Get(&p, `SELECT`+phoneCols+` FROM phones WHERE id = ?`, id)
	return p, err
}

// List returns phones newest-change first, optionally narrowed by a
// brand/model substring and/or an exact condition. Platform-listed filtering
// happens in the service layer since listings live in a JSON column.
func (r *PhoneRepo) List(q string, cond domain.Condition) ([]domain.Phone, error) {
	where := `1=1`
	args := []any{}
	if q != "" {
		where += ` AND (LOWER(brand) LIKE ? OR LOWER(model) LIKE ?)`
		args = append(args, "%"+q+"%", "%"+q+"%")
	}
	if cond != "" {
		where += ` AND condition = ?`
		args = append(args, cond)
	}

	var out []domain.Phone
	err := r.db.Select(&out, `
	  SELECT`+phoneCols+`
	  FROM phones
	  WHERE `+where+`
	  ORDER BY COALESCE(updated_at, created_at) DESC, id`, args...)
	return out, err
}

func (r *PhoneRepo) Create(p domain.Phone) error {
	_, err := r.db.Exec(`
	  INSERT INTO phones(id, brand, model, storage, color, condition, base_price, stock, tags, price_overrides, listings)
	  VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, '{}', '{}')`,
		p.ID, p.Brand, p.Model, p.Storage, p.Color, p.Condition, p.BasePrice, p.Stock, p.Tags)
	return err
}

// UpdateFields rewrites the descriptive attributes, leaving the overrides and
// listings columns untouched.
func (r *PhoneRepo) UpdateFields(p domain.Phone) error {
	_, err := r.db.Exec(`
	  UPDATE phones
	  SET brand=?, model=?, storage=?, color=?, condition=?, base_price=?, stock=?, tags=?,
	      updated_at=CURRENT_TIMESTAMP
	  WHERE id=?`,
		p.Brand, p.Model, p.Storage, p.Color, p.Condition, p.BasePrice, p.Stock, p.Tags, p.ID)
	return err
}

func (r *PhoneRepo) Delete(id string) error {
	_, err := r.db.Exec(`DELETE FROM phones WHERE id=?`, id)
	return err
}

// SaveListings persists the full listings map for one phone in a single
// statement; the latest attempt for a platform wins.
func (r *PhoneRepo) SaveListings(id string, listings domain.ListingMap) error {
	_, err := r.db.Exec(`UPDATE phones SET listings=?, updated_at=CURRENT_TIMESTAMP WHERE id=?`, listings, id)
	return err
}

func (r *PhoneRepo) SaveOverrides(id string, overrides domain.OverrideMap) error {
	_, err := r.db.Exec(`UPDATE phones SET price_overrides=?, updated_at=CURRENT_TIMESTAMP WHERE id=?`, overrides, id)
	return err
}
