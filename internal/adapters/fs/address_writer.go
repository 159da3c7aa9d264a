package fs

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/ethereum/go-ethereum/common"
	"github.com/xONEIROS/swisstronik-mint-NFT-ERC721/internal/usecase"
)

// defaultFileMode applies when the target does not exist yet
const defaultFileMode = 0644

// AddressWriterAdapter persists deployed addresses as plain text files
type AddressWriterAdapter struct{}

// NewAddressWriterAdapter creates a new address writer adapter
func NewAddressWriterAdapter() *AddressWriterAdapter {
	return &AddressWriterAdapter{}
}

// WriteAddress writes the checksummed address to path with no trailing newline.
// The content goes to a temp file in the same directory which is then renamed
// over path, so readers never see a partial file and a failed write leaves the
// previous content in place. An existing file keeps its permissions.
func (w *AddressWriterAdapter) WriteAddress(ctx context.Context, path string, address common.Address) error {
	dir := filepath.Dir(path)

	mode := os.FileMode(defaultFileMode)
	if info, err := os.Stat(path); err == nil {
		mode = info.Mode().Perm()
	}

	tmp, err := os.CreateTemp(dir, "."+filepath.Base(path)+".*")
	if err != nil {
		return fmt.Errorf("failed to create temp file in %s: %w", dir, err)
	}
	tmpName := tmp.Name()
	defer os.Remove(tmpName) // no-op after a successful rename

	if _, err := tmp.WriteString(address.Hex()); err != nil {
		tmp.Close()
		return fmt.Errorf("failed to write %s: %w", tmpName, err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("failed to close %s: %w", tmpName, err)
	}
	if err := os.Chmod(tmpName, mode); err != nil {
		return fmt.Errorf("failed to set permissions on %s: %w", tmpName, err)
	}
	if err := os.Rename(tmpName, path); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	return nil
}

// Ensure the adapter implements the interface
var _ usecase.AddressWriter = (*AddressWriterAdapter)(nil)
