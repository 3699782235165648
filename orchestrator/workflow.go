package orchestrator

// Workflow runs steps one after another. Each node names the step to run
// next on success; a failing step or a missing successor ends the run.
type Workflow struct {
	StartingNode *Node
	Nodes        []*Node
}

func NewWorkflow() *Workflow {
	return &Workflow{}
}

func (workflow *Workflow) Run(session *Session) Error {
	currentNode := workflow.StartingNode

	for currentNode != nil {
		if err := currentNode.step.Run(session); err != nil {
			return Error{err}
		}
		currentNode = workflow.findNode(currentNode.successStep)
	}

	return nil
}

// findNode returns the node registered for step. A successor that was never
// added to the workflow runs as a terminal node.
func (workflow *Workflow) findNode(step Step) *Node {
	if step == nil {
		return nil
	}
	for _, value := range workflow.Nodes {
		if value.step == step {
			return value
		}
	}
	return NewNode(step)
}

func (workflow *Workflow) Add(step Step) *Node {
	for _, existing := range workflow.Nodes {
		if existing.step == step {
			return existing
		}
	}
	node := NewNode(step)
	workflow.Nodes = append(workflow.Nodes, node)
	return node
}

func (workflow *Workflow) StartWith(step Step) *Node {
	node := workflow.Add(step)
	workflow.StartingNode = node
	return node
}

type Step interface {
	Run(*Session) error
}

type Node struct {
	step        Step
	successStep Step
}

func NewNode(step Step) *Node {
	return &Node{step: step}
}

func (node *Node) OnSuccess(successStep Step) *Node {
	node.successStep = successStep
	return node
}
