// Command m6502run loads a raw memory image and runs it against a 6502
// core until either the configured success instruction count is
// reached or execution fails.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/f-cramer/go6502/cpu"
	"github.com/f-cramer/go6502/disassemble"
	"github.com/f-cramer/go6502/memory"
)

var dialect = flag.String("dialect", "nmos", "Instruction set to decode: nmos or cmos")

func main() {
	flag.Parse()
	args := flag.Args()

	if len(args) < 1 {
		fmt.Fprintln(os.Stderr, "no file to interpret given")
		os.Exit(1)
	}
	if len(args) < 2 {
		fmt.Fprintln(os.Stderr, "no success instruction given")
		os.Exit(2)
	}

	path := args[0]
	var successThreshold uint32
	if _, err := fmt.Sscanf(args[1], "%x", &successThreshold); err != nil {
		log.Fatalf("cannot parse success instruction %q as hex: %v", args[1], err)
	}

	d, err := parseDialect(*dialect)
	if err != nil {
		log.Fatalf("invalid -dialect: %v", err)
	}

	fmt.Printf("reading from %s\n", path)
	fmt.Printf("success at instruction %#06x\n", successThreshold)

	image, err := os.ReadFile(path)
	if err != nil {
		log.Fatalf("can't load image: %v from path: %s", err, path)
	}

	ram := memory.New()
	ram.PowerOn()
	ram.Load(0x0000, image)

	p := cpu.New(d, ram)

	for {
		if p.InstructionCount()%1000000 == 0 {
			text, _ := disassemble.Step(p.PC, d, ram)
			fmt.Printf("%d: running instruction %s\n", p.InstructionCount(), text)
		}

		result, err := p.Step(successThreshold)
		if err != nil {
			fmt.Printf("next operation %#04x at %#06x\n", ram.Read(p.PC), p.PC)
			fmt.Printf("cpu %+v\n", p)
			log.Fatalf("execution failed: %v", err)
		}
		if result == cpu.Finished {
			break
		}
	}
}

func parseDialect(s string) (cpu.Dialect, error) {
	switch s {
	case "nmos", "":
		return cpu.NMOS, nil
	case "cmos":
		return cpu.CMOS, nil
	default:
		return 0, fmt.Errorf("unknown dialect %q, want nmos or cmos", s)
	}
}
