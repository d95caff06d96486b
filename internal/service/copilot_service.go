package service

import (
	"context"
	"strings"

	"github.com/chipchop/chipchop/internal/domain"
)

// copilotRule maps a keyword to a canned reply. Rules are checked in order;
// the first keyword found in the lowercased message wins.
type copilotRule struct {
	keyword string
	reply   string
	actions []string
}

var copilotRules = []copilotRule{
	{
		keyword: "counter",
		reply: "Here is a simple 4-bit counter in Verilog:\n\n```verilog\nmodule counter (\n    input clk,\n    input rst,\n    output reg [3:0] count\n);\n    always @(posedge clk or posedge rst) begin\n        if (rst)\n            count <= 4'b0000;\n        else\n            count <= count + 1;\n    end\nendmodule\n```",
		actions: []string{"Create File"},
	},
	{
		keyword: "synthesis",
		reply:   "To run synthesis, you can use the Flow Navigator on the left. Would you like me to start a synthesis run for you?",
		actions: []string{"Run Synthesis"},
	},
	{
		keyword: "bitstream",
		reply:   "Bitstream generation requires a completed implementation run. Please ensure timing constraints are met first.",
		actions: []string{},
	},
}

const copilotFallback = "I can help you with RTL coding, synthesis, implementation, and more. Try asking me to 'create a counter' or 'help with synthesis'."

// CopilotService returns canned assistant replies by keyword match
type CopilotService struct{}

// NewCopilotService creates a new copilot service
func NewCopilotService() *CopilotService {
	return &CopilotService{}
}

// Chat selects a reply for the message
func (s *CopilotService) Chat(ctx context.Context, req *domain.ChatRequest) *domain.ChatResponse {
	msg := strings.ToLower(req.Message)
	for _, rule := range copilotRules {
		if strings.Contains(msg, rule.keyword) {
			return &domain.ChatResponse{Reply: rule.reply, Actions: rule.actions}
		}
	}
	return &domain.ChatResponse{Reply: copilotFallback, Actions: []string{}}
}
