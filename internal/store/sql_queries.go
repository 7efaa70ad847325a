// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

const (
	upsertSyncMetadata = `
		INSERT INTO sync_metadata (
			entity_id,
			entity_type,
			local_version,
			server_version,
			last_modified,
			last_synced,
			is_pending_sync,
			is_pending_delete,
			device_id,
			sync_attempts,
			last_sync_error
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
		ON CONFLICT (entity_id, entity_type) DO UPDATE SET
			local_version     = excluded.local_version,
			server_version    = excluded.server_version,
			last_modified     = excluded.last_modified,
			last_synced       = excluded.last_synced,
			is_pending_sync   = excluded.is_pending_sync,
			is_pending_delete = excluded.is_pending_delete,
			device_id         = excluded.device_id,
			sync_attempts     = excluded.sync_attempts,
			last_sync_error   = excluded.last_sync_error;`

	getSyncMetadata = `
		SELECT
			entity_id,
			entity_type,
			local_version,
			server_version,
			last_modified,
			last_synced,
			is_pending_sync,
			is_pending_delete,
			device_id,
			sync_attempts,
			last_sync_error
		FROM sync_metadata
		WHERE entity_id = $1 AND entity_type = $2;`

	getPendingSyncMetadata = `
		SELECT
			entity_id,
			entity_type,
			local_version,
			server_version,
			last_modified,
			last_synced,
			is_pending_sync,
			is_pending_delete,
			device_id,
			sync_attempts,
			last_sync_error
		FROM sync_metadata
		WHERE entity_type = $1 AND is_pending_sync = 1 AND is_pending_delete = 0
		ORDER BY last_modified
		LIMIT $2;`

	getPendingDeleteMetadata = `
		SELECT
			entity_id,
			entity_type,
			local_version,
			server_version,
			last_modified,
			last_synced,
			is_pending_sync,
			is_pending_delete,
			device_id,
			sync_attempts,
			last_sync_error
		FROM sync_metadata
		WHERE entity_type = $1 AND is_pending_delete = 1
		ORDER BY last_modified;`

	markSyncedMetadata = `
		UPDATE sync_metadata SET
			server_version    = $1,
			last_synced       = $2,
			is_pending_sync   = 0,
			is_pending_delete = 0,
			sync_attempts     = 0,
			last_sync_error   = ''
		WHERE entity_id = $3 AND entity_type = $4;`

	markFailedMetadata = `
		UPDATE sync_metadata SET
			sync_attempts   = sync_attempts + 1,
			last_sync_error = $1
		WHERE entity_id = $2 AND entity_type = $3;`

	countPendingMetadata = `
		SELECT COUNT(*)
		FROM sync_metadata
		WHERE is_pending_sync = 1 OR is_pending_delete = 1;`

	deleteSyncMetadata = `
		DELETE FROM sync_metadata
		WHERE entity_id = $1 AND entity_type = $2;`

	getSyncCursor = `
		SELECT last_sync_version FROM sync_cursor WHERE id = 1;`

	setSyncCursor = `
		INSERT INTO sync_cursor (id, last_sync_version) VALUES (1, $1)
		ON CONFLICT (id) DO UPDATE SET last_sync_version = excluded.last_sync_version;`

	saveSyncConflict = `
		INSERT INTO sync_conflicts (
			conflict_id,
			entity_type,
			entity_id,
			conflict_type,
			local_fields,
			remote_fields,
			suggested_resolution,
			detected_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		ON CONFLICT (conflict_id) DO UPDATE SET
			conflict_type        = excluded.conflict_type,
			local_fields         = excluded.local_fields,
			remote_fields        = excluded.remote_fields,
			suggested_resolution = excluded.suggested_resolution,
			detected_at          = excluded.detected_at;`

	getSyncConflict = `
		SELECT
			conflict_id,
			entity_type,
			entity_id,
			conflict_type,
			local_fields,
			remote_fields,
			suggested_resolution,
			detected_at
		FROM sync_conflicts
		WHERE conflict_id = $1;`

	listSyncConflicts = `
		SELECT
			conflict_id,
			entity_type,
			entity_id,
			conflict_type,
			local_fields,
			remote_fields,
			suggested_resolution,
			detected_at
		FROM sync_conflicts
		ORDER BY detected_at;`

	deleteSyncConflict = `
		DELETE FROM sync_conflicts WHERE conflict_id = $1;`

	countSyncConflicts = `
		SELECT COUNT(*) FROM sync_conflicts;`

	upsertLocation = `
		INSERT INTO locations (id, latitude, longitude, altitude, accuracy, recorded_at)
		VALUES ($1, $2, $3, $4, $5, $6)
		ON CONFLICT (id) DO UPDATE SET
			latitude    = excluded.latitude,
			longitude   = excluded.longitude,
			altitude    = excluded.altitude,
			accuracy    = excluded.accuracy,
			recorded_at = excluded.recorded_at;`

	getLocation = `
		SELECT id, latitude, longitude, altitude, accuracy, recorded_at
		FROM locations
		WHERE id = $1;`

	deleteLocation = `
		DELETE FROM locations WHERE id = $1;`

	upsertPlaceVisit = `
		INSERT INTO place_visits (id, place_name, latitude, longitude, arrival_time, departure_time, notes)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		ON CONFLICT (id) DO UPDATE SET
			place_name     = excluded.place_name,
			latitude       = excluded.latitude,
			longitude      = excluded.longitude,
			arrival_time   = excluded.arrival_time,
			departure_time = excluded.departure_time,
			notes          = excluded.notes;`

	getPlaceVisit = `
		SELECT id, place_name, latitude, longitude, arrival_time, departure_time, notes
		FROM place_visits
		WHERE id = $1;`

	deletePlaceVisit = `
		DELETE FROM place_visits WHERE id = $1;`

	upsertTrip = `
		INSERT INTO trips (id, name, start_time, end_time, distance_meters, notes)
		VALUES ($1, $2, $3, $4, $5, $6)
		ON CONFLICT (id) DO UPDATE SET
			name            = excluded.name,
			start_time      = excluded.start_time,
			end_time        = excluded.end_time,
			distance_meters = excluded.distance_meters,
			notes           = excluded.notes;`

	getTrip = `
		SELECT id, name, start_time, end_time, distance_meters, notes
		FROM trips
		WHERE id = $1;`

	deleteTrip = `
		DELETE FROM trips WHERE id = $1;`

	upsertPhoto = `
		INSERT INTO photos (id, file_name, captured_at, latitude, longitude, place_visit_id)
		VALUES ($1, $2, $3, $4, $5, $6)
		ON CONFLICT (id) DO UPDATE SET
			file_name      = excluded.file_name,
			captured_at    = excluded.captured_at,
			latitude       = excluded.latitude,
			longitude      = excluded.longitude,
			place_visit_id = excluded.place_visit_id;`

	getPhoto = `
		SELECT id, file_name, captured_at, latitude, longitude, place_visit_id
		FROM photos
		WHERE id = $1;`

	deletePhoto = `
		DELETE FROM photos WHERE id = $1;`

	listPhotoIDsByVisit = `
		SELECT id FROM photos WHERE place_visit_id = $1 ORDER BY captured_at;`

	upsertSettings = `
		INSERT INTO settings (id, tracking_enabled, sample_interval_seconds, distance_unit, theme)
		VALUES ($1, $2, $3, $4, $5)
		ON CONFLICT (id) DO UPDATE SET
			tracking_enabled        = excluded.tracking_enabled,
			sample_interval_seconds = excluded.sample_interval_seconds,
			distance_unit           = excluded.distance_unit,
			theme                   = excluded.theme;`

	getSettings = `
		SELECT id, tracking_enabled, sample_interval_seconds, distance_unit, theme
		FROM settings
		WHERE id = $1;`

	deleteSettings = `
		DELETE FROM settings WHERE id = $1;`
)
