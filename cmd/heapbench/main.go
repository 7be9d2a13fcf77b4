// Command heapbench is an interactive shell for generating random heap
// traces and measuring how long the pairing heap, Fibonacci heap, and
// baseline binary heap each take to replay one.
package main

import (
	"bufio"
	"fmt"
	"math/rand"
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"time"

	"github.com/heapomatic/aheap"
	"github.com/heapomatic/aheap/internal/trace"
)

var fileNameFilter = regexp.MustCompile(`[^a-zA-Z0-9_\-]`)

const (
	dataDir   = "data"
	configDir = "config"
)

func main() {
	fmt.Println(
		"\n==================\n" +
			"=  Heap-o-Matic  =\n" +
			"=                =\n" +
			"==================",
	)
	displayHelp(nil)

	scanner := bufio.NewScanner(os.Stdin)
	for {
		fmt.Print("> ")
		if !scanner.Scan() {
			break
		}
		args := strings.Fields(strings.ToLower(scanner.Text()))
		if len(args) == 0 {
			continue
		}
		if args[0] == "exit" {
			fmt.Println("bye")
			return
		}

		switch args[0] {
		case "gen":
			genCommand(args)
		case "run":
			runCommand(args)
		case "help":
			displayHelp(args)
		default:
			fmt.Println("Invalid command. Type 'help' to display all commands.")
		}
	}
}

func genCommand(args []string) {
	var cfg trace.Config
	var err error

	if len(args) == 1 {
		cfg = trace.DefaultConfig()
	} else {
		path := filepath.Join(configDir, args[1])
		f, openErr := os.Open(path)
		if openErr != nil {
			fmt.Printf("File not found: %s\n", path)
			return
		}
		defer f.Close()
		cfg, err = trace.ReadConfig(f, args[1])
		if err != nil {
			fmt.Printf("Error reading config: %v\n", err)
			return
		}
	}

	fmt.Println("generating...")
	g := trace.NewGenerator(rand.NewSource(time.Now().UnixNano()))
	commands, stats := g.Generate(cfg)

	if err := os.MkdirAll(dataDir, 0o755); err != nil {
		fmt.Printf("Error creating data directory: %v\n", err)
		return
	}
	outPath := filepath.Join(dataDir, fileNameFilter.ReplaceAllString(cfg.Name, ""))
	out, err := os.Create(outPath)
	if err != nil {
		fmt.Printf("Error writing test data: %v\n", err)
		return
	}
	defer out.Close()
	if err := trace.WriteTrace(out, commands); err != nil {
		fmt.Printf("Error writing test data: %v\n", err)
		return
	}

	displayTestData(stats)
}

func runCommand(args []string) {
	if len(args) < 2 {
		fmt.Println("Invalid options. Type 'help run' for usage")
		return
	}
	dataName := "default"
	if len(args) >= 3 {
		dataName = args[2]
	}
	dataPath := filepath.Join(dataDir, dataName)

	f, err := os.Open(dataPath)
	if err != nil {
		fmt.Println("Test data not found. Use the gen command if you haven't already.")
		return
	}
	defer f.Close()

	commands, err := trace.ReadTrace(f)
	if err != nil {
		fmt.Printf("Error reading test data: %v\n", err)
		return
	}

	switch args[1] {
	case "p":
		fmt.Println("running...")
		elapsed, err := timeRun(trace.PairingAdapter{PairingHeap: aheap.NewPairingHeap(aheap.HeapConfig{})}, commands)
		report("Pairing heap", elapsed, err)
	case "f":
		fmt.Println("running...")
		elapsed, err := timeRun(trace.FibonacciAdapter{FibonacciHeap: aheap.NewFibonacciHeap(aheap.HeapConfig{})}, commands)
		report("Fibonacci heap", elapsed, err)
	case "b":
		fmt.Println("running...")
		elapsed, err := timeRun(trace.BinaryAdapter{BinaryHeapBaseline: aheap.NewBinaryHeapBaseline()}, commands)
		report("Binary heap", elapsed, err)
	default:
		fmt.Println("Invalid option. Type 'help run' for usage.")
	}
}

func timeRun(h trace.AddressableHeap, commands []trace.Command) (time.Duration, error) {
	start := time.Now()
	err := trace.Run(h, commands)
	return time.Since(start), err
}

func report(label string, elapsed time.Duration, err error) {
	if err != nil {
		fmt.Printf("Run failed: %v\n", err)
		return
	}
	fmt.Printf("\n%s runtime: %s\n\n", label, elapsed)
}

func displayTestData(stats trace.Stats) {
	fmt.Printf(
		"\n-----Test Composition-----\n"+
			"operations %d\n"+
			"add        %.2f%%\n"+
			"decrease   %.2f%%\n"+
			"pop min    %.2f%%\n"+
			"min value  %d\n"+
			"max value  %d\n"+
			"--------------------------\n",
		stats.Total,
		100*float64(stats.Add)/float64(stats.Total),
		100*float64(stats.Decr)/float64(stats.Total),
		100*float64(stats.Pop)/float64(stats.Total),
		stats.MinVal,
		stats.MaxVal,
	)
}

func displayHelp(args []string) {
	if len(args) <= 1 {
		fmt.Print(
			"\nCommands\n" +
				"  gen   Generate test data\n" +
				"  run   Run a test\n" +
				"  help  Display this help message\n" +
				"  exit  Stop testing\n" +
				"Type 'help <command>' to show more details.\n\n",
		)
		return
	}
	switch args[1] {
	case "gen":
		fmt.Print(
			"\nGenerate test data\n" +
				"  usage: gen [config]\n" +
				"  Where [config] is the name of the config file,\n" +
				"  located in the config/ directory. Omit to use\n" +
				"  default values.\n\n",
		)
	case "run":
		fmt.Print(
			"\nMeasure a heap's runtime\n" +
				"  usage: run <heap> [data]\n" +
				"  Where <heap> is one of the following:\n" +
				"    p -> pairing heap\n" +
				"    f -> Fibonacci heap\n" +
				"    b -> binary heap\n" +
				"  And [data] is the name of the test data file,\n" +
				"  located in the data/ directory. Omit to use\n" +
				"  the default data file.\n\n",
		)
	case "help":
		fmt.Print(
			"\nDisplay command information\n" +
				"  usage: help [command]\n" +
				"  Where [command] is the command to get help for.\n" +
				"  Omit [command] to display all commands.\n\n",
		)
	case "exit":
		fmt.Print("\nExit this application\n  usage: exit\n\n")
	default:
		fmt.Println("Unrecognized command. Type 'help' to show all commands.")
	}
}
