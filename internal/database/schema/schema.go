package schema

// SchemaSQL contains the full database schema initialization script
const SchemaSQL = `
-- Users

CREATE TABLE IF NOT EXISTS users (
    user_id VARCHAR(128) PRIMARY KEY,
    email VARCHAR(255) NOT NULL DEFAULT '',
    role VARCHAR(20) NOT NULL DEFAULT 'viewer',
    channel_name VARCHAR(100) NOT NULL DEFAULT '',
    channel_description TEXT NOT NULL DEFAULT '',
    upload_hours_used INTEGER NOT NULL DEFAULT 0,
    upload_hours_limit INTEGER NOT NULL DEFAULT 10,
    total_earnings BIGINT NOT NULL DEFAULT 0,
    is_streaming_subscriber BOOLEAN NOT NULL DEFAULT FALSE,
    streaming_trial_ends_at TIMESTAMPTZ,
    streaming_subscription_ends_at TIMESTAMPTZ,
    created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
    updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
);

-- Catalog

CREATE TABLE IF NOT EXISTS categories (
    category_id SERIAL PRIMARY KEY,
    name VARCHAR(100) UNIQUE NOT NULL,
    slug VARCHAR(100) UNIQUE NOT NULL,
    description TEXT NOT NULL DEFAULT '',
    created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
);

CREATE TABLE IF NOT EXISTS subcategories (
    subcategory_id SERIAL PRIMARY KEY,
    category_id INTEGER NOT NULL REFERENCES categories(category_id) ON DELETE CASCADE,
    name VARCHAR(100) NOT NULL,
    slug VARCHAR(100) NOT NULL,
    description TEXT NOT NULL DEFAULT '',
    created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
    UNIQUE (category_id, slug)
);

CREATE TABLE IF NOT EXISTS videos (
    video_id SERIAL PRIMARY KEY,
    creator_id VARCHAR(128) NOT NULL REFERENCES users(user_id) ON DELETE CASCADE,
    title VARCHAR(200) NOT NULL,
    description TEXT NOT NULL DEFAULT '',
    video_url TEXT NOT NULL DEFAULT '',
    thumbnail_url TEXT NOT NULL DEFAULT '',
    duration_minutes INTEGER NOT NULL DEFAULT 0,
    category_id INTEGER REFERENCES categories(category_id) ON DELETE SET NULL,
    subcategory_id INTEGER REFERENCES subcategories(subcategory_id) ON DELETE SET NULL,
    tier VARCHAR(20) NOT NULL CHECK (tier IN ('streaming', 'basic', 'premium')),
    price BIGINT NOT NULL DEFAULT 0,
    external_payment_url TEXT NOT NULL DEFAULT '',
    external_price BIGINT NOT NULL DEFAULT 0,
    donated_to_streaming BOOLEAN NOT NULL DEFAULT FALSE,
    views BIGINT NOT NULL DEFAULT 0,
    purchases BIGINT NOT NULL DEFAULT 0,
    likes BIGINT NOT NULL DEFAULT 0,
    dislikes BIGINT NOT NULL DEFAULT 0,
    is_published BOOLEAN NOT NULL DEFAULT FALSE,
    is_featured BOOLEAN NOT NULL DEFAULT FALSE,
    tags TEXT[] NOT NULL DEFAULT '{}',
    language VARCHAR(20) NOT NULL DEFAULT 'en',
    created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
    updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
);

CREATE INDEX IF NOT EXISTS idx_videos_creator ON videos (creator_id);
CREATE INDEX IF NOT EXISTS idx_videos_category ON videos (category_id);
CREATE INDEX IF NOT EXISTS idx_videos_published ON videos (is_published) WHERE is_published;

-- Purchase Ledger
-- Rows are append-only. The unique payment_ref constraint is what makes
-- settlement idempotent: a redelivered payment event inserts nothing.

CREATE TABLE IF NOT EXISTS purchases (
    purchase_id BIGSERIAL PRIMARY KEY,
    user_id VARCHAR(128) NOT NULL REFERENCES users(user_id) ON DELETE CASCADE,
    video_id INTEGER NOT NULL REFERENCES videos(video_id) ON DELETE CASCADE,
    purchase_type VARCHAR(30) NOT NULL,
    price_at_purchase BIGINT NOT NULL,
    creator_earnings BIGINT NOT NULL,
    platform_earnings BIGINT NOT NULL,
    payment_ref VARCHAR(255) UNIQUE NOT NULL,
    created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
);

CREATE INDEX IF NOT EXISTS idx_purchases_user ON purchases (user_id);
CREATE INDEX IF NOT EXISTS idx_purchases_video ON purchases (video_id);

-- Engagement

CREATE TABLE IF NOT EXISTS watch_history (
    watch_id BIGSERIAL PRIMARY KEY,
    user_id VARCHAR(128) NOT NULL REFERENCES users(user_id) ON DELETE CASCADE,
    video_id INTEGER NOT NULL REFERENCES videos(video_id) ON DELETE CASCADE,
    watch_seconds INTEGER NOT NULL DEFAULT 0,
    watched_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
);

CREATE INDEX IF NOT EXISTS idx_watch_history_user ON watch_history (user_id, watched_at DESC);
CREATE INDEX IF NOT EXISTS idx_watch_history_month ON watch_history (video_id, watched_at);

CREATE TABLE IF NOT EXISTS video_reactions (
    reaction_id BIGSERIAL PRIMARY KEY,
    video_id INTEGER NOT NULL REFERENCES videos(video_id) ON DELETE CASCADE,
    user_id VARCHAR(128) NOT NULL REFERENCES users(user_id) ON DELETE CASCADE,
    is_like BOOLEAN NOT NULL,
    created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
    UNIQUE (video_id, user_id)
);

CREATE TABLE IF NOT EXISTS favorites (
    favorite_id BIGSERIAL PRIMARY KEY,
    user_id VARCHAR(128) NOT NULL REFERENCES users(user_id) ON DELETE CASCADE,
    video_id INTEGER NOT NULL REFERENCES videos(video_id) ON DELETE CASCADE,
    created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
    UNIQUE (user_id, video_id)
);

CREATE TABLE IF NOT EXISTS comments (
    comment_id BIGSERIAL PRIMARY KEY,
    video_id INTEGER NOT NULL REFERENCES videos(video_id) ON DELETE CASCADE,
    user_id VARCHAR(128) NOT NULL REFERENCES users(user_id) ON DELETE CASCADE,
    content TEXT NOT NULL,
    parent_id BIGINT REFERENCES comments(comment_id) ON DELETE CASCADE,
    likes INTEGER NOT NULL DEFAULT 0,
    created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
    updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
);

CREATE INDEX IF NOT EXISTS idx_comments_video ON comments (video_id, created_at DESC);

-- Streaming Royalties
-- One row per (creator, video, month). Distribution upserts so a re-run
-- for a month replaces rather than duplicates.

CREATE TABLE IF NOT EXISTS streaming_royalties (
    royalty_id BIGSERIAL PRIMARY KEY,
    creator_id VARCHAR(128) NOT NULL REFERENCES users(user_id) ON DELETE CASCADE,
    video_id INTEGER NOT NULL REFERENCES videos(video_id) ON DELETE CASCADE,
    month VARCHAR(7) NOT NULL,
    watch_minutes BIGINT NOT NULL DEFAULT 0,
    royalty_earnings BIGINT NOT NULL DEFAULT 0,
    created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
    UNIQUE (creator_id, video_id, month)
);

CREATE INDEX IF NOT EXISTS idx_royalties_creator ON streaming_royalties (creator_id, month);

-- Event Log

CREATE TABLE IF NOT EXISTS events (
    id BIGSERIAL PRIMARY KEY,
    event_type VARCHAR(100) NOT NULL,
    user_id VARCHAR(128),
    payload JSONB NOT NULL DEFAULT '{}',
    metadata JSONB,
    created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
);

CREATE INDEX IF NOT EXISTS idx_events_type ON events (event_type, created_at DESC);
CREATE INDEX IF NOT EXISTS idx_events_user ON events (user_id, created_at DESC);
`
