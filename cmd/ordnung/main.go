package main

import (
	"bufio"
	"flag"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/go-faker/faker/v4"
	"github.com/npillmayer/ordnung"
	"github.com/npillmayer/ordnung/btree"
	"github.com/npillmayer/ordnung/treeprint"
	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing/gologadapter"
)

// repl is an interactive session on a single sorted word collection.
type repl struct {
	scanner *bufio.Scanner
	coll    *ordnung.Collection[string]
	config  *treeprint.Config
}

func main() {
	degree := flag.Int("degree", btree.DefaultDegree, "minimum degree of the backing tree (>= 2)")
	seed := flag.Int("seed", 0, "number of random words to seed the collection with")
	flag.Parse()
	gtrace.CoreTracer = gologadapter.New()
	coll, err := ordnung.NewWith(*degree, btree.NaturalOrder[string]())
	if err != nil {
		fmt.Fprintf(os.Stderr, "ordnung: %v\n", err)
		os.Exit(1)
	}
	for i := 0; i < *seed; i++ {
		coll.Add(faker.Word())
	}
	session := &repl{
		scanner: bufio.NewScanner(os.Stdin),
		coll:    coll,
		config:  treeprint.ConfigFromTerminal(),
	}
	session.start()
}

func (r *repl) start() {
	r.printHelp()
	r.printPrompt()
	for r.scanner.Scan() {
		r.processInput(r.scanner.Text())
		r.printPrompt()
	}
}

func (r *repl) printHelp() {
	fmt.Print(`
Sorted word collection

Available commands:
  add <word>...   insert words into the collection
  del <word>      remove one occurrence of a word
  has <word>      report whether a word is in the collection
  ls              print all words in order
  len             print item count and tree height
  shape           print the backing tree's node layout
  dot             write a graphviz rendering to stdout
  seed <n>        insert n random words
  clear           remove all words
  help            print this summary
  exit            terminate this session

`)
}

func (r *repl) printPrompt() {
	fmt.Print("> ")
}

func (r *repl) processInput(line string) {
	fields := strings.Fields(line)
	if len(fields) < 1 {
		return
	}
	command := strings.ToLower(fields[0])
	switch command {
	default:
		fmt.Printf("Unknown command \"%s\"\n", command)
	case "add":
		r.processAddCommand(fields[1:])
	case "del":
		r.processDeleteCommand(fields[1:])
	case "has":
		r.processHasCommand(fields[1:])
	case "ls":
		fmt.Println(r.coll)
	case "len":
		fmt.Printf("%d items, tree height %d\n", r.coll.Len(), r.coll.Height())
	case "shape":
		r.printShape()
	case "dot":
		if err := r.coll.ToDot(os.Stdout); err != nil {
			fmt.Fprintf(os.Stderr, "ordnung: %v\n", err)
		}
	case "seed":
		r.processSeedCommand(fields[1:])
	case "clear":
		r.coll.Clear()
		r.printShape()
	case "help":
		r.printHelp()
	case "exit":
		os.Exit(0)
	}
}

func (r *repl) processAddCommand(args []string) {
	if len(args) < 1 {
		fmt.Println("Usage: add <word>...")
		return
	}
	r.coll.AddAll(args...)
	r.printShape()
}

func (r *repl) processDeleteCommand(args []string) {
	if len(args) != 1 {
		fmt.Println("Usage: del <word>")
		return
	}
	if !r.coll.Remove(args[0]) {
		fmt.Println("Word not found.")
		return
	}
	r.printShape()
}

func (r *repl) processHasCommand(args []string) {
	if len(args) != 1 {
		fmt.Println("Usage: has <word>")
		return
	}
	if r.coll.Contains(args[0]) {
		fmt.Printf("\"%s\" is in the collection\n", args[0])
	} else {
		fmt.Printf("\"%s\" is not in the collection\n", args[0])
	}
}

func (r *repl) processSeedCommand(args []string) {
	if len(args) != 1 {
		fmt.Println("Usage: seed <n>")
		return
	}
	n, err := strconv.Atoi(args[0])
	if err != nil || n < 0 {
		fmt.Println("Usage: seed <n>")
		return
	}
	for i := 0; i < n; i++ {
		r.coll.Add(faker.Word())
	}
	r.printShape()
}

func (r *repl) printShape() {
	if err := treeprint.Fprint(os.Stdout, r.coll, r.config); err != nil {
		fmt.Fprintf(os.Stderr, "ordnung: %v\n", err)
	}
}
