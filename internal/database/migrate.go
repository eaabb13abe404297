package database

import (
    "context"
    "database/sql"
    "fmt"
)

// migrations are applied in order at startup.  Each statement is
// idempotent so restarting the server is always safe.
var migrations = []string{
    `CREATE TABLE IF NOT EXISTS rooms (
        id BIGINT UNSIGNED NOT NULL AUTO_INCREMENT,
        owner_id BIGINT UNSIGNED NOT NULL,
        name VARCHAR(255) NOT NULL,
        hourly_price BIGINT NOT NULL,
        created_at DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP,
        updated_at DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP ON UPDATE CURRENT_TIMESTAMP,
        PRIMARY KEY (id),
        KEY idx_rooms_owner (owner_id)
    ) ENGINE=InnoDB DEFAULT CHARSET=utf8mb4`,

    `CREATE TABLE IF NOT EXISTS reservations (
        id BIGINT UNSIGNED NOT NULL AUTO_INCREMENT,
        room_id BIGINT UNSIGNED NOT NULL,
        user_id BIGINT UNSIGNED NOT NULL,
        start_at DATETIME NOT NULL,
        end_at DATETIME NOT NULL,
        status ENUM('booked','paid','canceled') NOT NULL DEFAULT 'booked',
        amount BIGINT NOT NULL,
        created_at DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP,
        updated_at DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP ON UPDATE CURRENT_TIMESTAMP,
        PRIMARY KEY (id),
        KEY idx_reservations_room_range (room_id, start_at, end_at),
        KEY idx_reservations_user (user_id)
    ) ENGINE=InnoDB DEFAULT CHARSET=utf8mb4`,

    `CREATE TABLE IF NOT EXISTS closures (
        id BIGINT UNSIGNED NOT NULL AUTO_INCREMENT,
        room_id BIGINT UNSIGNED NOT NULL,
        start_at DATETIME NOT NULL,
        end_at DATETIME NOT NULL,
        reason VARCHAR(255) NOT NULL DEFAULT '',
        created_at DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP,
        PRIMARY KEY (id),
        KEY idx_closures_room_range (room_id, start_at, end_at)
    ) ENGINE=InnoDB DEFAULT CHARSET=utf8mb4`,

    `CREATE TABLE IF NOT EXISTS room_business_hours (
        id BIGINT UNSIGNED NOT NULL AUTO_INCREMENT,
        room_id BIGINT UNSIGNED NOT NULL,
        day_index TINYINT NOT NULL,
        open_time TIME NULL,
        close_time TIME NULL,
        holiday TINYINT(1) NOT NULL DEFAULT 0,
        PRIMARY KEY (id),
        UNIQUE KEY uq_business_hours_room_day (room_id, day_index)
    ) ENGINE=InnoDB DEFAULT CHARSET=utf8mb4`,

    `CREATE TABLE IF NOT EXISTS price_rules (
        id BIGINT UNSIGNED NOT NULL AUTO_INCREMENT,
        room_id BIGINT UNSIGNED NOT NULL,
        rule_type ENUM('multiplier','flat_fee') NOT NULL,
        weekday TINYINT NULL,
        start_hour TIME NULL,
        end_hour TIME NULL,
        multiplier DECIMAL(6,2) NULL,
        flat_fee BIGINT NULL,
        note VARCHAR(255) NULL,
        PRIMARY KEY (id),
        KEY idx_price_rules_room (room_id)
    ) ENGINE=InnoDB DEFAULT CHARSET=utf8mb4`,
}

// Migrate creates the schema if it does not exist yet.
func Migrate(ctx context.Context, db *sql.DB) error {
    for i, stmt := range migrations {
        if _, err := db.ExecContext(ctx, stmt); err != nil {
            return fmt.Errorf("migration %d: %w", i+1, err)
        }
    }
    return nil
}
