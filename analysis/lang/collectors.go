package lang

// Assignments returns the names assigned by assignment statements anywhere
// under n. Variable declarations do not count; they introduce fresh variables
// instead of changing existing ones.
func Assignments(n Node) map[Name]bool {
	names := map[Name]bool{}
	Inspect(n, func(m Node) bool {
		if a, ok := m.(*Assignment); ok {
			for _, v := range a.VariableNames {
				names[v] = true
			}
		}
		return true
	})
	return names
}

// AssignmentsSinceContinue returns the names assigned at points of the given
// loop body that are syntactically reachable after a continue belonging to
// that loop. A continue nested in an inner loop belongs to the inner loop and
// does not open the collection window. Function definitions must have been
// hoisted out of loop bodies before this runs; finding one is a fatal error.
func AssignmentsSinceContinue(body *Block) map[Name]bool {
	c := &sinceContinue{names: map[Name]bool{}}
	c.DoBlock(body)
	return c.names
}

// sinceContinue implements StmtOp so that adding a statement variant forces a
// decision about its continue-reachability here.
type sinceContinue struct {
	loopDepth     int
	continueFound bool
	names         map[Name]bool
}

func (c *sinceContinue) DoBlock(b *Block) {
	for _, s := range b.Statements {
		StmtSwitch(c, s)
	}
}

func (c *sinceContinue) DoExpressionStatement(*ExpressionStatement) {}

func (c *sinceContinue) DoAssignment(s *Assignment) {
	if c.continueFound {
		for _, n := range s.VariableNames {
			c.names[n] = true
		}
	}
}

func (c *sinceContinue) DoVariableDeclaration(*VariableDeclaration) {}

func (c *sinceContinue) DoFunctionDefinition(*FunctionDefinition) {
	panic("function definition inside a loop body")
}

func (c *sinceContinue) DoIf(s *If) {
	c.DoBlock(s.Body)
}

func (c *sinceContinue) DoSwitch(s *Switch) {
	for _, arm := range s.Cases {
		c.DoBlock(arm.Body)
	}
}

func (c *sinceContinue) DoForLoop(s *ForLoop) {
	c.loopDepth++
	c.DoBlock(s.Pre)
	c.DoBlock(s.Post)
	c.DoBlock(s.Body)
	c.loopDepth--
}

func (c *sinceContinue) DoBreak(*Break) {}

func (c *sinceContinue) DoContinue(*Continue) {
	if c.loopDepth == 0 {
		c.continueFound = true
	}
}
