package store

import (
	"fmt"
	"strings"
)

const userColumns = `user_id, full_name, email, password_hash, role, status, last_login, created_at`

const (
	createUser = `INSERT INTO users (full_name, email, password_hash, role, status)
    VALUES ($1, $2, $3, $4, $5)
    RETURNING ` + userColumns + `;`

	findUserByEmail = `SELECT ` + userColumns + `
    FROM users
    WHERE email = $1;`

	findUserByID = `SELECT ` + userColumns + `
    FROM users
    WHERE user_id = $1;`

	updatePassword = `UPDATE users
    SET password_hash = $1
    WHERE user_id = $2;`

	updateRole = `UPDATE users
    SET role = $1
    WHERE user_id = $2
    RETURNING ` + userColumns + `;`

	updateStatus = `UPDATE users
    SET status = $1
    WHERE user_id = $2
    RETURNING ` + userColumns + `;`

	updateLastLogin = `UPDATE users
    SET last_login = $1
    WHERE user_id = $2;`

	listUsers = `SELECT ` + userColumns + `
    FROM users
    ORDER BY user_id
    LIMIT $1 OFFSET $2;`

	countUsers = `SELECT COUNT(*) FROM users;`
)

// buildProfileUpdateQuery dynamically builds the UPDATE for a profile change:
// only the supplied fields appear in the SET clause, so an empty field keeps
// its stored value without being rewritten.
func buildProfileUpdateQuery(userID int64, fullName, email string) (string, []any) {
	queryBuilder := new(strings.Builder)
	queryBuilder.WriteString(`UPDATE users`)

	args := make([]any, 0, 3)
	setClauses := make([]string, 0, 2)
	argIndex := 1

	if fullName != "" {
		setClauses = append(setClauses, fmt.Sprintf("full_name = $%d", argIndex))
		args = append(args, fullName)
		argIndex++
	}
	if email != "" {
		setClauses = append(setClauses, fmt.Sprintf("email = $%d", argIndex))
		args = append(args, email)
		argIndex++
	}

	queryBuilder.WriteString(" SET ")
	queryBuilder.WriteString(strings.Join(setClauses, ", "))
	queryBuilder.WriteString(fmt.Sprintf(" WHERE user_id = $%d", argIndex))
	args = append(args, userID)
	queryBuilder.WriteString(" RETURNING " + userColumns + ";")

	return queryBuilder.String(), args
}
