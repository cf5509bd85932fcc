package services

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"sort"

	"github.com/kamal-hamza/usedassets/internal/core/domain"
	"github.com/kamal-hamza/usedassets/internal/core/ports"
)

// SyncService copies referenced assets from the source root into the destination root
type SyncService struct {
	store ports.AssetStore
}

// NewSyncService creates a new sync service
func NewSyncService(store ports.AssetStore) *SyncService {
	return &SyncService{
		store: store,
	}
}

// SyncRequest represents a request to reconcile a destination tree
type SyncRequest struct {
	Assets     domain.AssetSet
	SourceRoot string
	DestRoot   string

	// DryRun reports what would happen without touching the destination
	DryRun bool
	// Prune removes destination files that are not referenced
	Prune bool

	// OnResult, if set, is called as each asset is handled
	OnResult func(domain.CopyResult)
}

// SyncResponse represents the outcome of a sync run
type SyncResponse struct {
	Results  []domain.CopyResult
	Copied   int
	Missing  int
	Rejected int
	Pruned   int
	DryRun   bool
}

// Execute handles every asset independently. Missing sources are recorded and skipped;
// any other filesystem error aborts the run, leaving earlier copies in place.
// The partial response is returned alongside the error.
func (s *SyncService) Execute(ctx context.Context, req SyncRequest) (*SyncResponse, error) {
	if req.SourceRoot == "" || req.DestRoot == "" {
		return nil, domain.ErrMissingRootPath
	}

	resp := &SyncResponse{DryRun: req.DryRun}
	record := func(r domain.CopyResult) {
		resp.Results = append(resp.Results, r)
		switch r.Status {
		case domain.StatusCopied, domain.StatusWouldCopy:
			resp.Copied++
		case domain.StatusMissingSource:
			resp.Missing++
		case domain.StatusOutsideRoot:
			resp.Rejected++
		case domain.StatusPruned:
			resp.Pruned++
		}
		if req.OnResult != nil {
			req.OnResult(r)
		}
	}

	for _, asset := range req.Assets.Sorted() {
		if err := ctx.Err(); err != nil {
			return resp, err
		}

		result, err := s.syncOne(ctx, asset, req)
		if err != nil {
			return resp, err
		}
		record(result)
	}

	if req.Prune {
		if err := s.prune(ctx, req, record); err != nil {
			return resp, err
		}
	}

	return resp, nil
}

func (s *SyncService) syncOne(ctx context.Context, asset domain.AssetPath, req SyncRequest) (domain.CopyResult, error) {
	result := domain.CopyResult{Asset: asset}

	src, err := asset.Resolve(req.SourceRoot)
	if err != nil {
		if errors.Is(err, domain.ErrOutsideRoot) || errors.Is(err, domain.ErrEmptyAssetPath) {
			result.Source = string(asset)
			result.Status = domain.StatusOutsideRoot
			return result, nil
		}
		return result, err
	}
	dst, err := asset.Resolve(req.DestRoot)
	if err != nil {
		return result, err
	}
	result.Source = src
	result.Destination = dst

	exists, err := s.store.Exists(ctx, src)
	if err != nil {
		return result, fmt.Errorf("failed to check %s: %w", src, err)
	}
	if !exists {
		result.Status = domain.StatusMissingSource
		return result, nil
	}

	if req.DryRun {
		result.Status = domain.StatusWouldCopy
		return result, nil
	}

	if err := s.store.Copy(ctx, src, dst); err != nil {
		return result, fmt.Errorf("failed to copy %s -> %s: %w", src, dst, err)
	}
	result.Status = domain.StatusCopied
	return result, nil
}

// prune removes files under the destination root that no asset references.
// Referenced files whose source is missing are left alone.
func (s *SyncService) prune(ctx context.Context, req SyncRequest, record func(domain.CopyResult)) error {
	files, err := s.store.List(ctx, req.DestRoot)
	if err != nil {
		return fmt.Errorf("failed to list %s: %w", req.DestRoot, err)
	}
	sort.Strings(files)

	referenced := req.Assets.RelativeSet()
	for _, rel := range files {
		if referenced[rel] {
			continue
		}

		path := filepath.Join(req.DestRoot, rel)
		if !req.DryRun {
			if err := s.store.Remove(ctx, path); err != nil {
				return fmt.Errorf("failed to remove %s: %w", path, err)
			}
		}
		record(domain.CopyResult{
			Asset:       domain.AssetPath("/" + filepath.ToSlash(rel)),
			Destination: path,
			Status:      domain.StatusPruned,
		})
	}

	return nil
}

// Inspect reports where each asset currently exists without changing anything
func (s *SyncService) Inspect(ctx context.Context, assets domain.AssetSet, sourceRoot, destRoot string) ([]domain.AssetStatus, error) {
	if sourceRoot == "" || destRoot == "" {
		return nil, domain.ErrMissingRootPath
	}

	var statuses []domain.AssetStatus
	for _, asset := range assets.Sorted() {
		st := domain.AssetStatus{Asset: asset}

		src, err := asset.Resolve(sourceRoot)
		if err != nil {
			if errors.Is(err, domain.ErrOutsideRoot) || errors.Is(err, domain.ErrEmptyAssetPath) {
				st.OutsideRoot = true
				statuses = append(statuses, st)
				continue
			}
			return nil, err
		}
		dst, err := asset.Resolve(destRoot)
		if err != nil {
			return nil, err
		}
		st.Source, st.Destination = src, dst

		if st.InSource, err = s.store.Exists(ctx, src); err != nil {
			return nil, fmt.Errorf("failed to check %s: %w", src, err)
		}
		if st.InDest, err = s.store.Exists(ctx, dst); err != nil {
			return nil, fmt.Errorf("failed to check %s: %w", dst, err)
		}

		statuses = append(statuses, st)
	}

	return statuses, nil
}
