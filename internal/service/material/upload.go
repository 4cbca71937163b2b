package material

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"path/filepath"

	"github.com/google/uuid"

	"github.com/skillone/skillone-backend/internal/domain"
	"github.com/skillone/skillone-backend/pkg/ctxutil"
)

// UploadMaterial stores the file on the static file host and records it as a
// course material pointing at the public URL. Admin only. Fails with
// domain.ErrUnavailable when no storage backend is configured.
func (s *Service) UploadMaterial(ctx context.Context, input UploadMaterialInput, content io.Reader) (*domain.Material, error) {
	if !ctxutil.IsAdminCtx(ctx) {
		return nil, domain.ErrForbidden
	}
	if err := input.Validate(); err != nil {
		return nil, err
	}
	if s.uploader == nil {
		return nil, fmt.Errorf("file storage is not configured: %w", domain.ErrUnavailable)
	}

	if _, err := s.courses.GetByID(ctx, input.CourseID); err != nil {
		return nil, fmt.Errorf("get course: %w", err)
	}

	// Prefix with a fresh id so concurrent uploads of the same file name
	// never clobber each other.
	remoteName := uuid.NewString() + "_" + sanitizeFileName(input.FileName)

	publicURL, err := s.uploader.Upload(ctx, remoteName, io.LimitReader(content, MaxUploadBytes))
	if err != nil {
		return nil, fmt.Errorf("upload file: %w", err)
	}

	displayName := input.DisplayName
	if displayName == nil {
		name := input.FileName
		displayName = &name
	}

	created, err := s.materials.Create(ctx, &domain.Material{
		CourseID:     input.CourseID,
		MaterialType: materialTypeForFile(input.FileName),
		URL:          publicURL,
		DisplayName:  displayName,
	})
	if err != nil {
		return nil, fmt.Errorf("record uploaded material: %w", err)
	}

	s.log.InfoContext(ctx, "material uploaded",
		slog.String("material_id", created.ID.String()),
		slog.String("course_id", created.CourseID.String()),
		slog.String("url", created.URL),
		slog.Int64("size", input.Size),
	)

	return created, nil
}

// sanitizeFileName strips any path components and keeps a conservative
// character set.
func sanitizeFileName(name string) string {
	name = filepath.Base(name)
	out := make([]rune, 0, len(name))
	for _, r := range name {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9':
			out = append(out, r)
		case r == '.' || r == '-' || r == '_':
			out = append(out, r)
		default:
			out = append(out, '_')
		}
	}
	return string(out)
}
