package domain

const (
	RoleAdmin    = "admin"
	RoleEmployee = "employee"
)

type User struct {
	ID         int64  `db:"id" json:"id"`
	Username   string `db:"username" json:"username"`
	Password   string `db:"password" json:"password,omitempty"`
	Name       string `db:"name" json:"name"`
	Department string `db:"department" json:"department"`
	DOB        string `db:"dob" json:"dob"`
	Phone      string `db:"phone" json:"phone"`
	Address    string `db:"address" json:"address"`
	Role       string `db:"role" json:"role"`
	CreatedAt  string `db:"created_at" json:"created_at,omitempty"`
}
