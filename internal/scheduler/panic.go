package scheduler

import (
	"runtime/debug"
	"sync"

	"github.com/go-co-op/gocron"
	"github.com/sirupsen/logrus"
)

var installPanicHandler sync.Once

// recoverJobPanics instala no gocron o handler global que registra o panic de
// um job em vez de derrubar o processo
func recoverJobPanics() {
	installPanicHandler.Do(func() {
		gocron.SetPanicHandler(logJobPanic)
	})
}

func logJobPanic(jobName string, recovered any) {
	logrus.WithFields(logrus.Fields{
		"job":   jobName,
		"panic": recovered,
		"stack": string(debug.Stack()),
	}).Error("scheduler: job panicked")
}

// runRecovered executa fn fora do gocron com o mesmo tratamento de panic dos jobs
func runRecovered(jobName string, fn func()) {
	defer func() {
		if r := recover(); r != nil {
			logJobPanic(jobName, r)
		}
	}()
	fn()
}
