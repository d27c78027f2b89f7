package wordfile

import (
	"context"
	"fmt"
	"os"

	"github.com/guiguan/caster"
	"github.com/npillmayer/ordnung"
	"github.com/npillmayer/ordnung/wordlist"
)

// Progress is the payload type broadcast to subscribers while a word file
// is loading.
type Progress struct {
	Words int  // number of words collected so far
	Done  bool // set on the final event of a load
}

// Loader is responsible for loading a single word file in the background.
// Clients obtain one from Load and receive the finished collection from
// Wait.
type Loader struct {
	path string
	info os.FileInfo
	file *os.File
	cast *caster.Caster
	coll *ordnung.Collection[string]
	err  error
	done chan struct{}
}

// Load loads the words of a text file into a sorted collection. Loading is
// done asynchronously, but the file is opened synchronously: a non-existing
// or irregular file will make Load fail immediately.
//
// Every word of the file becomes one item of the collection, duplicates
// included. The collection is owned by the loader goroutine until Wait has
// returned.
func Load(name string) (*Loader, error) {
	ld, err := openFile(name)
	if err != nil {
		tracer().Errorf("cannot load word file: %s", err.Error())
		return nil, err
	}
	go ld.loadAllWords()
	return ld, nil
}

// Events subscribes to the progress events of this loader. The returned
// channel receives Progress values and is closed as soon as loading has
// finished or ctx is canceled. ok is false if the loader has already shut
// its broadcaster down.
//
// Subscribers are expected to consume their channel; canceling ctx drops
// the subscription.
func (ld *Loader) Events(ctx context.Context) (<-chan interface{}, bool) {
	return ld.cast.Sub(ctx, 1)
}

// Wait blocks until loading has finished, then hands out the collection.
func (ld *Loader) Wait() (*ordnung.Collection[string], error) {
	<-ld.done
	return ld.coll, ld.err
}

// Path returns the name the word file has been opened under.
func (ld *Loader) Path() string {
	return ld.path
}

// Size returns the size of the word file in bytes, as seen when it was
// opened.
func (ld *Loader) Size() int64 {
	return ld.info.Size()
}

// --- Loading ---------------------------------------------------------------

// progressEvery is the word interval between two progress events.
const progressEvery = 64

// loadAllWords runs as the single goroutine owning the collection until
// done is closed. It broadcasts a Progress event every progressEvery words
// plus a final one with Done set, then shuts the broadcaster down.
func (ld *Loader) loadAllWords() {
	defer close(ld.done)
	defer ld.cast.Close()
	count := 0
	wordlist.EachWord(ld.file, func(word string) bool {
		ld.coll.Add(word)
		count++
		if count%progressEvery == 0 {
			ld.cast.Pub(Progress{Words: count})
		}
		return true
	})
	if err := ld.file.Close(); err != nil {
		ld.err = err
	}
	ld.cast.Pub(Progress{Words: count, Done: true})
	tracer().Debugf("loaded %d words from %q", count, ld.path)
}

// --- Helpers ---------------------------------------------------------------

// openFile opens a word file for reading and sets up the loader around it.
func openFile(name string) (*Loader, error) {
	fi, err := os.Stat(name)
	if err != nil {
		return nil, err
	} else if !fi.Mode().IsRegular() {
		return nil, fmt.Errorf("%q is not a regular file", name)
	}
	file, err := os.Open(name)
	if err != nil {
		return nil, err
	}
	return &Loader{
		path: name,
		info: fi,
		file: file,
		cast: caster.New(nil),
		coll: ordnung.New[string](),
		done: make(chan struct{}),
	}, nil
}
