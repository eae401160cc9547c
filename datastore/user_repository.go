package datastore

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/color-game/palettes/models"
)

type UserRepository interface {
	Create(ctx context.Context, user models.User) (models.User, error)
	Get(ctx context.Context, userID string) (models.User, error)
	GetUserByEmail(ctx context.Context, email string) (models.User, error)
	GetUserByUsername(ctx context.Context, username string) (models.User, error)
	DeleteUserByID(ctx context.Context, userID string) error
	Update(ctx context.Context, user models.User) (models.User, error)
	ValidateAndGetUser(ctx context.Context, userLogin models.Credentials) (models.User, error)
	GetAllUsers(ctx context.Context) ([]models.User, error)

	// Device management
	CreateDevice(ctx context.Context, device models.UserDevice) error
	GetDeviceByFingerprint(ctx context.Context, userID string, fingerprint string) (models.UserDevice, error)
	DeleteDevice(ctx context.Context, deviceID string) error
}

func NewUserDatabase(db *sql.DB) (UserDatabase, error) {
	return UserDatabase{database: db}, nil
}

type UserDatabase struct {
	database *sql.DB
}

const userColumns = `
		user_id,
		username,
		email,
		password_hash,
		kind,
		approved,
		created_at,
		updated_at`

type rowScanner interface {
	Scan(dest ...any) error
}

func scanUser(row rowScanner) (models.User, error) {
	var user models.User
	err := row.Scan(
		&user.UserID,
		&user.Username,
		&user.Email,
		&user.HashedPassword,
		&user.Kind,
		&user.Approved,
		&user.CreatedAt,
		&user.UpdatedAt,
	)
	if err != nil {
		return models.User{}, scanErr(err)
	}
	return user, nil
}

func (pgdb UserDatabase) Create(ctx context.Context, user models.User) (models.User, error) {
	_, insertErr := pgdb.database.ExecContext(ctx, `
		INSERT INTO users (`+userColumns+`
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`,
		user.UserID,
		user.Username,
		user.Email,
		user.HashedPassword,
		user.Kind,
		user.Approved,
		user.CreatedAt,
		user.UpdatedAt,
	)
	if insertErr != nil {
		return user, fmt.Errorf("error creating user %v", insertErr)
	}

	return user, nil
}

func (pgdb UserDatabase) Get(ctx context.Context, userID string) (models.User, error) {
	row := pgdb.database.QueryRowContext(ctx, `SELECT `+userColumns+` FROM users WHERE user_id = $1`, userID)
	return scanUser(row)
}

func (pgdb UserDatabase) GetAllUsers(ctx context.Context) ([]models.User, error) {
	rows, pgErr := pgdb.database.QueryContext(ctx, `SELECT `+userColumns+` FROM users ORDER BY created_at DESC`)
	if pgErr != nil {
		return []models.User{}, pgErr
	}
	defer rows.Close()

	users := []models.User{}
	for rows.Next() {
		user, err := scanUser(rows)
		if err != nil {
			return []models.User{}, err
		}
		users = append(users, user)
	}
	if rows.Err() != nil {
		return []models.User{}, rows.Err()
	}

	return users, nil
}

func (pgdb UserDatabase) GetUserByEmail(ctx context.Context, email string) (models.User, error) {
	row := pgdb.database.QueryRowContext(ctx, `SELECT `+userColumns+` FROM users WHERE email = $1`, email)
	return scanUser(row)
}

func (pgdb UserDatabase) GetUserByUsername(ctx context.Context, username string) (models.User, error) {
	row := pgdb.database.QueryRowContext(ctx, `SELECT `+userColumns+` FROM users WHERE username = $1`, username)
	return scanUser(row)
}

func (pgdb UserDatabase) DeleteUserByID(ctx context.Context, userID string) error {
	_, delErr := pgdb.database.ExecContext(ctx, "DELETE FROM users WHERE user_id = $1", userID)
	if delErr != nil {
		return fmt.Errorf("delete failed: %v", delErr)
	}

	return nil
}

func (pgdb UserDatabase) Update(ctx context.Context, user models.User) (models.User, error) {
	user.UpdatedAt = time.Now()

	_, updateErr := pgdb.database.ExecContext(ctx, `
	UPDATE users
	SET
		username = $2,
		email = $3,
		kind = $4,
		updated_at = $5
	WHERE user_id = $1`,
		user.UserID,
		user.Username,
		user.Email,
		user.Kind,
		user.UpdatedAt,
	)
	if updateErr != nil {
		return models.User{}, fmt.Errorf("error updating user %v", updateErr)
	}
	return user, nil
}

func (pgdb UserDatabase) ValidateAndGetUser(ctx context.Context, credentials models.Credentials) (models.User, error) {
	user, err := pgdb.GetUserByEmail(ctx, credentials.Email)
	if err != nil {
		return models.User{}, fmt.Errorf("error in row scan %v", err)
	}

	if err := user.CheckPassword(credentials.Password); err != nil {
		return models.User{}, fmt.Errorf("error in compare of hash %v", err)
	}
	return user, nil
}

// CreateDevice creates a new device record for a user
func (pgdb UserDatabase) CreateDevice(ctx context.Context, device models.UserDevice) error {
	_, err := pgdb.database.ExecContext(ctx, `
		INSERT INTO user_devices (user_id, device_data, fingerprint, expiry)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (fingerprint, user_id)
		DO UPDATE SET device_data = $2, expiry = $4`,
		device.UserID, device.DeviceData, device.Fingerprint, device.Expiry)
	return err
}

// GetDeviceByFingerprint retrieves a device by user ID and fingerprint
func (pgdb UserDatabase) GetDeviceByFingerprint(ctx context.Context, userID string, fingerprint string) (models.UserDevice, error) {
	var device models.UserDevice

	row := pgdb.database.QueryRowContext(ctx, `
		SELECT id, user_id, device_data, fingerprint, expiry
		FROM user_devices
		WHERE user_id = $1 AND fingerprint = $2`, userID, fingerprint)
	err := row.Scan(&device.ID, &device.UserID, &device.DeviceData, &device.Fingerprint, &device.Expiry)
	if err != nil {
		return models.UserDevice{}, scanErr(err)
	}

	return device, nil
}

// DeleteDevice removes a device by ID
func (pgdb UserDatabase) DeleteDevice(ctx context.Context, deviceID string) error {
	_, err := pgdb.database.ExecContext(ctx, `DELETE FROM user_devices WHERE id = $1`, deviceID)
	return err
}
