// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/go-atlas-keeper/internal/logger"
	"github.com/MKhiriev/go-atlas-keeper/internal/store"
	"github.com/MKhiriev/go-atlas-keeper/models"
)

type syncOperations struct {
	storages   *store.ClientStorages
	deviceID   string
	batchLimit int
	logger     *logger.Logger
}

// NewSyncOperations constructs the change collector/applier working against
// the given storages. batchLimit caps how many pending entities of one type
// are collected per round; zero means no limit.
func NewSyncOperations(storages *store.ClientStorages, deviceID string, batchLimit int, log *logger.Logger) SyncOperations {
	return &syncOperations{
		storages:   storages,
		deviceID:   deviceID,
		batchLimit: batchLimit,
		logger:     log,
	}
}

// CollectLocalChanges implements [SyncOperations].
func (s *syncOperations) CollectLocalChanges(ctx context.Context) (models.ChangeSet, error) {
	var batch models.ChangeSet

	for _, entityType := range models.AllEntityTypes {
		metas, err := s.storages.SyncMetadata.GetPendingSync(ctx, entityType, s.batchLimit)
		if err != nil {
			return models.ChangeSet{}, fmt.Errorf("get pending metadata (%s): %w", entityType, err)
		}

		for _, meta := range metas {
			if err := s.collectOne(ctx, meta, &batch); err != nil {
				return models.ChangeSet{}, err
			}
		}
	}

	if err := s.collectDeletions(ctx, &batch); err != nil {
		return models.ChangeSet{}, err
	}

	return batch, nil
}

// collectOne resolves one pending metadata row to a live entity and appends
// its wire delta to the batch. A row whose entity is gone from the domain
// repository is skipped: the entity was deleted without a tombstone, so
// there is nothing left to upload.
func (s *syncOperations) collectOne(ctx context.Context, meta models.SyncMetadata, batch *models.ChangeSet) error {
	envelope := envelopeFromMetadata(meta)

	switch meta.EntityType {
	case models.EntityLocation:
		location, err := s.storages.Locations.Get(ctx, meta.EntityID)
		if err != nil {
			return s.skipMissing(meta, err)
		}
		batch.Locations = append(batch.Locations, models.LocationDelta{SyncEnvelope: envelope, Location: location})

	case models.EntityPlaceVisit:
		visit, err := s.storages.PlaceVisits.Get(ctx, meta.EntityID)
		if err != nil {
			return s.skipMissing(meta, err)
		}
		photoIDs, err := s.storages.Photos.ListIDsByVisit(ctx, meta.EntityID)
		if err != nil {
			// The visit still syncs; the association catches up next round.
			s.logger.Warn().Err(err).
				Str("entity_id", meta.EntityID).
				Msg("failed to list photos of visit, sending delta without photo ids")
		}
		batch.PlaceVisits = append(batch.PlaceVisits, models.PlaceVisitDelta{
			SyncEnvelope: envelope,
			PlaceVisit:   visit,
			PhotoIDs:     photoIDs,
		})

	case models.EntityTrip:
		trip, err := s.storages.Trips.Get(ctx, meta.EntityID)
		if err != nil {
			return s.skipMissing(meta, err)
		}
		batch.Trips = append(batch.Trips, models.TripDelta{SyncEnvelope: envelope, Trip: trip})

	case models.EntityPhoto:
		photo, err := s.storages.Photos.Get(ctx, meta.EntityID)
		if err != nil {
			return s.skipMissing(meta, err)
		}
		batch.Photos = append(batch.Photos, models.PhotoDelta{SyncEnvelope: envelope, Photo: photo})

	case models.EntitySettings:
		settings, err := s.storages.Settings.Get(ctx, meta.EntityID)
		if err != nil {
			return s.skipMissing(meta, err)
		}
		batch.Settings = &models.SettingsDelta{SyncEnvelope: envelope, Settings: settings}

	default:
		return fmt.Errorf("%w: %s", ErrUnknownEntityType, meta.EntityType)
	}

	return nil
}

// skipMissing swallows ErrEntityNotFound (pending row without a live entity)
// and propagates every other repository error.
func (s *syncOperations) skipMissing(meta models.SyncMetadata, err error) error {
	if errors.Is(err, store.ErrEntityNotFound) {
		s.logger.Debug().
			Str("entity_id", meta.EntityID).
			Str("entity_type", string(meta.EntityType)).
			Msg("pending entity missing from repository, skipping")
		return nil
	}
	return fmt.Errorf("load pending entity %s/%s: %w", meta.EntityType, meta.EntityID, err)
}

func (s *syncOperations) collectDeletions(ctx context.Context, batch *models.ChangeSet) error {
	for _, entityType := range models.AllEntityTypes {
		tombstones, err := s.storages.SyncMetadata.GetPendingDelete(ctx, entityType)
		if err != nil {
			return fmt.Errorf("get pending deletions (%s): %w", entityType, err)
		}

		for _, meta := range tombstones {
			switch entityType {
			case models.EntityLocation:
				batch.DeletedIDs.Locations = append(batch.DeletedIDs.Locations, meta.EntityID)
			case models.EntityPlaceVisit:
				batch.DeletedIDs.PlaceVisits = append(batch.DeletedIDs.PlaceVisits, meta.EntityID)
			case models.EntityTrip:
				batch.DeletedIDs.Trips = append(batch.DeletedIDs.Trips, meta.EntityID)
			case models.EntityPhoto:
				batch.DeletedIDs.Photos = append(batch.DeletedIDs.Photos, meta.EntityID)
			case models.EntitySettings:
				// Settings are never deleted, only overwritten.
			}
		}
	}

	return nil
}

// ApplyRemoteChanges implements [SyncOperations]. Each entity is applied on
// its own; an error while applying one is logged and the loop continues, so
// a single malformed remote entity never aborts the rest of the batch.
func (s *syncOperations) ApplyRemoteChanges(ctx context.Context, remote models.ChangeSet) (int, error) {
	applied := 0

	for _, delta := range remote.Locations {
		if err := s.applyLocation(ctx, delta); err != nil {
			s.logApplyFailure(models.EntityLocation, delta.ID, err)
			continue
		}
		applied++
	}

	for _, delta := range remote.PlaceVisits {
		if err := s.applyPlaceVisit(ctx, delta); err != nil {
			s.logApplyFailure(models.EntityPlaceVisit, delta.ID, err)
			continue
		}
		applied++
	}

	for _, delta := range remote.Trips {
		if err := s.applyTrip(ctx, delta); err != nil {
			s.logApplyFailure(models.EntityTrip, delta.ID, err)
			continue
		}
		applied++
	}

	for _, delta := range remote.Photos {
		if err := s.applyPhoto(ctx, delta); err != nil {
			s.logApplyFailure(models.EntityPhoto, delta.ID, err)
			continue
		}
		applied++
	}

	if remote.Settings != nil {
		if err := s.applySettings(ctx, *remote.Settings); err != nil {
			s.logApplyFailure(models.EntitySettings, remote.Settings.ID, err)
		} else {
			applied++
		}
	}

	applied += s.applyRemoteDeletions(ctx, remote.DeletedIDs)

	return applied, nil
}

func (s *syncOperations) applyLocation(ctx context.Context, delta models.LocationDelta) error {
	if delta.SyncAction == models.ActionDelete {
		return s.deleteLocally(ctx, delta.ID, models.EntityLocation)
	}
	if err := s.storages.Locations.Upsert(ctx, delta.Location); err != nil {
		return err
	}
	return s.acknowledgeRemote(ctx, delta.SyncEnvelope, models.EntityLocation)
}

func (s *syncOperations) applyPlaceVisit(ctx context.Context, delta models.PlaceVisitDelta) error {
	if delta.SyncAction == models.ActionDelete {
		return s.deleteLocally(ctx, delta.ID, models.EntityPlaceVisit)
	}
	if err := s.storages.PlaceVisits.Upsert(ctx, delta.PlaceVisit); err != nil {
		return err
	}
	return s.acknowledgeRemote(ctx, delta.SyncEnvelope, models.EntityPlaceVisit)
}

func (s *syncOperations) applyTrip(ctx context.Context, delta models.TripDelta) error {
	if delta.SyncAction == models.ActionDelete {
		return s.deleteLocally(ctx, delta.ID, models.EntityTrip)
	}
	if err := s.storages.Trips.Upsert(ctx, delta.Trip); err != nil {
		return err
	}
	return s.acknowledgeRemote(ctx, delta.SyncEnvelope, models.EntityTrip)
}

func (s *syncOperations) applyPhoto(ctx context.Context, delta models.PhotoDelta) error {
	if delta.SyncAction == models.ActionDelete {
		return s.deleteLocally(ctx, delta.ID, models.EntityPhoto)
	}
	if err := s.storages.Photos.Upsert(ctx, delta.Photo); err != nil {
		return err
	}
	return s.acknowledgeRemote(ctx, delta.SyncEnvelope, models.EntityPhoto)
}

func (s *syncOperations) applySettings(ctx context.Context, delta models.SettingsDelta) error {
	if err := s.storages.Settings.Upsert(ctx, delta.Settings); err != nil {
		return err
	}
	return s.acknowledgeRemote(ctx, delta.SyncEnvelope, models.EntitySettings)
}

// acknowledgeRemote records a metadata row for an entity the server just
// sent: the entity is in sync at the server's version, nothing pending.
// Re-applying the same delta after an interrupted round converges on the
// same row, which is what makes resumption safe.
func (s *syncOperations) acknowledgeRemote(ctx context.Context, envelope models.SyncEnvelope, entityType models.EntityType) error {
	serverVersion := envelope.ServerVersion
	if serverVersion == 0 {
		serverVersion = 1
	}
	localVersion := envelope.LocalVersion
	if localVersion == 0 {
		localVersion = serverVersion
	}

	now := time.Now().UTC()
	return s.storages.SyncMetadata.Upsert(ctx, models.SyncMetadata{
		EntityID:      envelope.ID,
		EntityType:    entityType,
		LocalVersion:  localVersion,
		ServerVersion: serverVersion,
		LastModified:  envelope.LastModified,
		LastSynced:    &now,
		IsPendingSync: false,
		DeviceID:      envelope.DeviceID,
	})
}

func (s *syncOperations) applyRemoteDeletions(ctx context.Context, deleted models.DeletedIDs) int {
	applied := 0

	apply := func(ids []string, entityType models.EntityType) {
		for _, id := range ids {
			if err := s.deleteLocally(ctx, id, entityType); err != nil {
				s.logApplyFailure(entityType, id, err)
				continue
			}
			applied++
		}
	}

	apply(deleted.Locations, models.EntityLocation)
	apply(deleted.PlaceVisits, models.EntityPlaceVisit)
	apply(deleted.Trips, models.EntityTrip)
	apply(deleted.Photos, models.EntityPhoto)

	return applied
}

func (s *syncOperations) deleteLocally(ctx context.Context, entityID string, entityType models.EntityType) error {
	var err error
	switch entityType {
	case models.EntityLocation:
		err = s.storages.Locations.Delete(ctx, entityID)
	case models.EntityPlaceVisit:
		err = s.storages.PlaceVisits.Delete(ctx, entityID)
	case models.EntityTrip:
		err = s.storages.Trips.Delete(ctx, entityID)
	case models.EntityPhoto:
		err = s.storages.Photos.Delete(ctx, entityID)
	case models.EntitySettings:
		err = s.storages.Settings.Delete(ctx, entityID)
	default:
		return fmt.Errorf("%w: %s", ErrUnknownEntityType, entityType)
	}
	if err != nil {
		return err
	}

	return s.storages.SyncMetadata.Delete(ctx, entityID, entityType)
}

func (s *syncOperations) logApplyFailure(entityType models.EntityType, entityID string, err error) {
	s.logger.Error().Err(err).
		Str("entity_type", string(entityType)).
		Str("entity_id", entityID).
		Msg("failed to apply remote entity, continuing batch")
}

// UpdateSyncMetadata implements [SyncOperations].
func (s *syncOperations) UpdateSyncMetadata(ctx context.Context, response models.DeltaSyncResponse) error {
	for _, entityType := range models.AllEntityTypes {
		for _, entityID := range response.Accepted.ForType(entityType) {
			if err := s.acknowledgeAccepted(ctx, entityID, entityType, response.SyncVersion); err != nil {
				return err
			}
		}
	}

	for entityType, rejections := range response.Rejected {
		for _, rejection := range rejections {
			err := s.storages.SyncMetadata.MarkFailed(ctx, rejection.ID, entityType, rejection.Reason)
			if err != nil && !errors.Is(err, store.ErrMetadataNotFound) {
				return fmt.Errorf("mark failed %s/%s: %w", entityType, rejection.ID, err)
			}
			s.logger.Warn().
				Str("entity_type", string(entityType)).
				Str("entity_id", rejection.ID).
				Str("reason", rejection.Reason).
				Msg("entity rejected by server, will retry next round")
		}
	}

	return nil
}

// acknowledgeAccepted marks one accepted entity as synced. An accepted
// deletion drops the tombstone row entirely, completing the entity's
// lifecycle on this device.
func (s *syncOperations) acknowledgeAccepted(ctx context.Context, entityID string, entityType models.EntityType, syncVersion int64) error {
	meta, err := s.storages.SyncMetadata.Get(ctx, entityID, entityType)
	if err != nil {
		if errors.Is(err, store.ErrMetadataNotFound) {
			s.logger.Warn().
				Str("entity_type", string(entityType)).
				Str("entity_id", entityID).
				Msg("server accepted an entity with no local metadata")
			return nil
		}
		return fmt.Errorf("get metadata %s/%s: %w", entityType, entityID, err)
	}

	if meta.IsPendingDelete {
		if err = s.storages.SyncMetadata.Delete(ctx, entityID, entityType); err != nil {
			return fmt.Errorf("drop tombstone %s/%s: %w", entityType, entityID, err)
		}
		return nil
	}

	if err = s.storages.SyncMetadata.MarkSynced(ctx, entityID, entityType, syncVersion); err != nil {
		return fmt.Errorf("mark synced %s/%s: %w", entityType, entityID, err)
	}
	return nil
}

func envelopeFromMetadata(meta models.SyncMetadata) models.SyncEnvelope {
	return models.SyncEnvelope{
		ID:            meta.EntityID,
		SyncAction:    meta.Action(),
		LocalVersion:  meta.LocalVersion,
		ServerVersion: meta.ServerVersion,
		DeviceID:      meta.DeviceID,
		LastModified:  meta.LastModified,
	}
}
