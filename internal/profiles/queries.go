package profiles

// expected schema:
//
//	CREATE TABLE profiles (
//	    email      TEXT PRIMARY KEY,
//	    data       JSONB NOT NULL,
//	    updated_at TIMESTAMPTZ NOT NULL DEFAULT now()
//	);
const (
	queryGetProfile = `
		SELECT data
		FROM profiles
		WHERE email = $1`

	queryUpsertProfile = `
		INSERT INTO profiles (email, data, updated_at)
		VALUES ($1, $2, now())
		ON CONFLICT (email)
		DO UPDATE SET data = EXCLUDED.data, updated_at = now()`
)
