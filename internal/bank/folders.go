package bank

import (
	"fmt"
	"slices"
	"strings"

	"wordplay/internal/domain"
	"wordplay/internal/ports"
)

// ListFolders returns every folder in persisted order
func (b *Bank) ListFolders() (domain.Folders, error) {
	var folders domain.Folders
	err := b.read(func(s *state) error {
		folders = s.folders
		return nil
	})
	return folders, err
}

// GetFolder returns the folder with the given id
func (b *Bank) GetFolder(id string) (*domain.Folder, error) {
	var folder *domain.Folder
	err := b.read(func(s *state) error {
		f, ok := s.folders.Find(id)
		if !ok {
			return fmt.Errorf("folder %s: %w", id, domain.ErrNotFound)
		}
		folder = f
		return nil
	})
	return folder, err
}

// ChildrenOf returns the direct children of parentID; "" selects the root level
func (b *Bank) ChildrenOf(parentID string) ([]domain.Folder, error) {
	var children []domain.Folder
	err := b.read(func(s *state) error {
		children = s.folders.ChildrenOf(parentID)
		return nil
	})
	return children, err
}

// PathOf renders "Root / Child / Leaf" for a folder
func (b *Bank) PathOf(folderID string) (string, error) {
	var path string
	err := b.read(func(s *state) error {
		path = s.folders.PathOf(folderID)
		return nil
	})
	return path, err
}

// IsLeaf reports whether the folder has no child folders
func (b *Bank) IsLeaf(folderID string) (bool, error) {
	var leaf bool
	err := b.read(func(s *state) error {
		leaf = len(s.folders.ChildrenOf(folderID)) == 0
		return nil
	})
	return leaf, err
}

// AddFolder creates a folder. An empty color picks the next palette colour.
func (b *Bank) AddFolder(name, color, parentID string) (*domain.Folder, error) {
	var folder *domain.Folder
	err := b.write(func(s *state) error {
		var err error
		if name, err = cleanName(name); err != nil {
			return err
		}
		if parentID != "" {
			if _, ok := s.folders.Find(parentID); !ok {
				return fmt.Errorf("parent folder %s: %w", parentID, domain.ErrNotFound)
			}
		}
		if color == "" {
			color = domain.PaletteColor(len(s.folders))
		}
		folder = b.createFolder(s, name, color, parentID)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return folder, nil
}

// UpdateFolder renames, recolours or moves a folder. Moving a folder under
// itself or one of its descendants fails with domain.ErrCycle.
func (b *Bank) UpdateFolder(id string, patch domain.FolderPatch) (*domain.Folder, error) {
	var updated domain.Folder
	err := b.write(func(s *state) error {
		f, ok := s.folders.Find(id)
		if !ok {
			return fmt.Errorf("folder %s: %w", id, domain.ErrNotFound)
		}

		if patch.ParentID != nil && *patch.ParentID != "" {
			newParent := *patch.ParentID
			if _, ok := s.folders.Find(newParent); !ok {
				return fmt.Errorf("parent folder %s: %w", newParent, domain.ErrNotFound)
			}
			if s.folders.IsWithin(newParent, id) {
				return fmt.Errorf("move %s under %s: %w", id, newParent, domain.ErrCycle)
			}
		}
		if patch.Name != nil {
			name, err := cleanName(*patch.Name)
			if err != nil {
				return err
			}
			f.Name = name
		}
		if patch.Color != nil {
			f.Color = *patch.Color
		}
		if patch.ParentID != nil {
			f.ParentID = *patch.ParentID
		}
		updated = *f
		return nil
	})
	if err != nil {
		return nil, err
	}
	b.logger.Debug("folder updated", "id", id, "name", updated.Name, "parent_id", updated.ParentID)
	return &updated, nil
}

// ResolveOrCreate returns the leaf folder of path, creating each missing
// level. Levels are matched by (name, parent), so repeated calls with the
// same path return the same folders.
func (b *Bank) ResolveOrCreate(path string) (*domain.Folder, error) {
	var folder *domain.Folder
	err := b.write(func(s *state) error {
		f, err := b.resolveOrCreate(s, path)
		if err != nil {
			return err
		}
		folder = f
		return nil
	})
	if err != nil {
		return nil, err
	}
	return folder, nil
}

func (b *Bank) resolveOrCreate(s *state, path string) (*domain.Folder, error) {
	segments := domain.SplitPath(path)
	if len(segments) == 0 {
		return nil, fmt.Errorf("%q: %w", path, domain.ErrInvalidPath)
	}

	var current *domain.Folder
	parentID := ""
	for _, name := range segments {
		existing, ok := s.folders.FindChild(parentID, name)
		if ok {
			copied := *existing
			current = &copied
		} else {
			color := domain.PaletteColor(len(s.folders))
			current = b.createFolder(s, name, color, parentID)
		}
		parentID = current.ID
	}
	return current, nil
}

func (b *Bank) createFolder(s *state, name, color, parentID string) *domain.Folder {
	f := domain.Folder{
		ID:        b.newID(),
		Name:      name,
		Color:     color,
		ParentID:  parentID,
		CreatedAt: b.timestamp(),
	}
	s.folders = append(s.folders, f)
	b.logger.Debug("folder created", "id", f.ID, "name", f.Name, "parent_id", f.ParentID)
	return &f
}

// DeleteFolder removes the folder and all of its descendants in one store
// write. Their questions are moved to unfiled, or removed with DeletePurge.
func (b *Bank) DeleteFolder(id string, mode ports.DeleteMode) (*ports.DeleteFolderResult, error) {
	result := &ports.DeleteFolderResult{}
	err := b.write(func(s *state) error {
		if _, ok := s.folders.Find(id); !ok {
			return fmt.Errorf("folder %s: %w", id, domain.ErrNotFound)
		}

		closure := s.folders.Closure(id)
		inClosure := make(map[string]bool, len(closure))
		for _, fid := range closure {
			inClosure[fid] = true
		}

		kept := s.questions[:0:0]
		for _, q := range s.questions {
			if q.FolderID == "" || !inClosure[q.FolderID] {
				kept = append(kept, q)
				continue
			}
			if mode == ports.DeletePurge {
				result.PurgedQuestions++
				continue
			}
			q.FolderID = ""
			result.ReassignedQuestions++
			kept = append(kept, q)
		}
		s.questions = kept

		s.folders = slices.DeleteFunc(s.folders, func(f domain.Folder) bool {
			return inClosure[f.ID]
		})
		result.RemovedFolders = closure
		return nil
	})
	if err != nil {
		return nil, err
	}
	b.logger.Debug("folder deleted",
		"id", id,
		"removed_folders", len(result.RemovedFolders),
		"reassigned", result.ReassignedQuestions,
		"purged", result.PurgedQuestions,
	)
	return result, nil
}

// cleanName trims name and rejects names that could not be addressed by path
func cleanName(name string) (string, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return "", fmt.Errorf("folder name is required: %w", domain.ErrInvalidName)
	}
	if strings.Contains(name, domain.PathSeparator) {
		return "", fmt.Errorf("folder name %q contains %q: %w", name, domain.PathSeparator, domain.ErrInvalidName)
	}
	return name, nil
}
