package main

import (
	"flag"
	"fmt"
	"io"
	"io/ioutil"
	"time"

	"golox/internal"

	"github.com/sirupsen/logrus"
)

var source = `
fun fib(n) {
	if (n < 2) return n;
	return fib(n - 1) + fib(n - 2);
}

var total = 0;
for (var i = 0; i < 100000; i = i + 1) {
	total = total + i;
}

print fib(25);
print total;
`

type discardPrinter struct{}

func (discardPrinter) Println(a ...interface{}) (n int, err error) {
	return fmt.Fprintln(ioutil.Discard, a...)
}

func (discardPrinter) Fprintf(w io.Writer, format string, a ...interface{}) (n int, err error) {
	return fmt.Fprintf(w, format, a...)
}

func (discardPrinter) Fprintln(w io.Writer, a ...interface{}) (n int, err error) {
	return fmt.Fprintln(w, a...)
}

func main() {
	runs := flag.Int("n", 3, "number of runs")
	flag.Parse()

	log := logrus.New()

	var total time.Duration
	for i := 0; i < *runs; i++ {
		start := time.Now()
		if !internal.RunSourceWithPrinter(source, discardPrinter{}) {
			log.WithField("run", i).Fatal("benchmark program failed")
		}
		elapsed := time.Since(start)
		total += elapsed
		log.WithFields(logrus.Fields{
			"run":     i,
			"elapsed": elapsed,
		}).Info("run finished")
	}

	if *runs > 0 {
		fmt.Println("Time elapsed is:", total/time.Duration(*runs))
	}
}
