package textures

import (
	"embed"
	"fmt"
	"image"
	_ "image/png"
	"io/fs"
	"path"
	"sort"
	"strings"
	"sync"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/icarusgame/icarus/pkg/log"
)

//go:embed textures/*.png
var embedded embed.FS

const (
	// DefaultAtlasName is the directory of the embedded atlas.
	DefaultAtlasName = "textures"

	ObstacleLeftLevel1  = "obstacleLeft_Level1"
	ObstacleRightLevel1 = "obstacleRight_Level1"
)

// Atlas is a named set of textures decoded from PNG files in a directory.
// Decoding happens once, in the background, when Preload is called.
type Atlas struct {
	name string
	fsys fs.FS

	start sync.Once
	done  chan struct{}

	lock    sync.Mutex
	decoded map[string]image.Image
	images  map[string]*ebiten.Image
	err     error
}

// Default returns the atlas embedded in the binary.
func Default() *Atlas {
	return NewAtlas(DefaultAtlasName, embedded)
}

// NewAtlas creates an atlas of the PNG files found in the directory name
// of fsys. Texture names are the file names without extension.
func NewAtlas(name string, fsys fs.FS) *Atlas {
	return &Atlas{
		name:    name,
		fsys:    fsys,
		done:    make(chan struct{}),
		decoded: make(map[string]image.Image),
		images:  make(map[string]*ebiten.Image),
	}
}

func (a *Atlas) Name() string {
	return a.name
}

// Preload decodes the atlas in the background and calls onComplete, if not
// nil, from the loading goroutine once it is done. Only the first call
// starts loading; later calls are ignored.
func (a *Atlas) Preload(onComplete func(err error)) {
	a.start.Do(func() {
		go func() {
			err := a.load()
			close(a.done)
			if onComplete != nil {
				onComplete(err)
			}
		}()
	})
}

// Loaded reports whether preloading has finished.
func (a *Atlas) Loaded() bool {
	select {
	case <-a.done:
		return true
	default:
		return false
	}
}

// Wait blocks until preloading has finished, starting it if needed, and
// returns its error.
func (a *Atlas) Wait() error {
	a.Preload(nil)
	<-a.done
	a.lock.Lock()
	defer a.lock.Unlock()
	return a.err
}

// Texture returns the named texture. It waits for preloading to finish.
func (a *Atlas) Texture(name string) (*ebiten.Image, error) {
	if err := a.Wait(); err != nil {
		return nil, err
	}

	a.lock.Lock()
	defer a.lock.Unlock()
	if img, ok := a.images[name]; ok {
		return img, nil
	}
	decoded, ok := a.decoded[name]
	if !ok {
		return nil, fmt.Errorf("texture %s not found in atlas %s", name, a.name)
	}
	img := ebiten.NewImageFromImage(decoded)
	a.images[name] = img
	return img, nil
}

// Names returns the sorted texture names. It waits for preloading to
// finish.
func (a *Atlas) Names() []string {
	if err := a.Wait(); err != nil {
		return nil
	}
	a.lock.Lock()
	defer a.lock.Unlock()
	names := make([]string, 0, len(a.decoded))
	for name := range a.decoded {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func (a *Atlas) load() error {
	decoded, err := decodeDir(a.fsys, a.name)

	a.lock.Lock()
	defer a.lock.Unlock()
	a.err = err
	if err != nil {
		log.Error("Failed to load texture atlas %s: %v", a.name, err)
		return err
	}
	a.decoded = decoded
	log.Debug("Loaded texture atlas %s with %d textures", a.name, len(decoded))
	return nil
}

func decodeDir(fsys fs.FS, dir string) (map[string]image.Image, error) {
	entries, err := fs.ReadDir(fsys, dir)
	if err != nil {
		return nil, fmt.Errorf("failed to read atlas directory: %v", err)
	}
	decoded := make(map[string]image.Image)
	for _, entry := range entries {
		if entry.IsDir() || path.Ext(entry.Name()) != ".png" {
			continue
		}
		f, err := fsys.Open(path.Join(dir, entry.Name()))
		if err != nil {
			return nil, fmt.Errorf("failed to open texture %s: %v", entry.Name(), err)
		}
		img, _, err := image.Decode(f)
		f.Close()
		if err != nil {
			return nil, fmt.Errorf("failed to decode texture %s: %v", entry.Name(), err)
		}
		decoded[strings.TrimSuffix(entry.Name(), ".png")] = img
	}
	return decoded, nil
}
