package orchestrator_test

import (
	"errors"

	"github.com/gbackup/gbackup/config"
	"github.com/gbackup/gbackup/orchestrator"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

type recordingStep struct {
	name string
	err  error
	runs *[]string
}

func (s *recordingStep) Run(*orchestrator.Session) error {
	*s.runs = append(*s.runs, s.name)
	return s.err
}

var _ = Describe("Workflow", func() {
	var (
		runs    []string
		session *orchestrator.Session
	)

	newStep := func(name string, err error) *recordingStep {
		return &recordingStep{name: name, err: err, runs: &runs}
	}

	BeforeEach(func() {
		runs = nil
		session = orchestrator.NewSession(config.Configuration{}, zeroTime)
	})

	It("follows the success path", func() {
		first, second, third := newStep("first", nil), newStep("second", nil), newStep("third", nil)

		workflow := orchestrator.NewWorkflow()
		workflow.StartWith(first).OnSuccess(second)
		workflow.Add(second).OnSuccess(third)
		workflow.Add(third)

		Expect(workflow.Run(session)).To(BeNil())
		Expect(runs).To(Equal([]string{"first", "second", "third"}))
	})

	It("stops at the first failing step and returns its error", func() {
		stepErr := errors.New("first failed")
		first, second := newStep("first", stepErr), newStep("second", nil)

		workflow := orchestrator.NewWorkflow()
		workflow.StartWith(first).OnSuccess(second)
		workflow.Add(second)

		Expect(workflow.Run(session)).To(ConsistOf(stepErr))
		Expect(runs).To(Equal([]string{"first"}))
	})

	It("runs a successor that was never added as a terminal step", func() {
		first, unregistered := newStep("first", nil), newStep("unregistered", nil)

		workflow := orchestrator.NewWorkflow()
		workflow.StartWith(first).OnSuccess(unregistered)

		Expect(workflow.Run(session)).To(BeNil())
		Expect(runs).To(Equal([]string{"first", "unregistered"}))
	})

	It("returns the same node when a step is added twice", func() {
		step := newStep("step", nil)
		workflow := orchestrator.NewWorkflow()

		Expect(workflow.Add(step)).To(BeIdenticalTo(workflow.Add(step)))
		Expect(workflow.Nodes).To(HaveLen(1))
	})
})
