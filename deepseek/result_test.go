package deepseek

import "testing"

func TestResultContent(t *testing.T) {
	tests := []struct {
		name    string
		result  Result
		want    string
		wantErr bool
	}{
		{
			name: "first choice content",
			result: Result{Choices: []Choice{
				{Index: 0, Message: Message{Role: RoleAssistant, Content: "first"}},
				{Index: 1, Message: Message{Role: RoleAssistant, Content: "second"}},
			}},
			want: "first",
		},
		{
			name:   "empty content is valid",
			result: Result{Choices: []Choice{{Message: Message{Role: RoleAssistant}}}},
			want:   "",
		},
		{
			name:    "no choices",
			result:  Result{},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := tt.result.Content()
			if (err != nil) != tt.wantErr {
				t.Fatalf("Content() error = %v, wantErr %v", err, tt.wantErr)
			}
			if got != tt.want {
				t.Errorf("Content() = %q, want %q", got, tt.want)
			}
		})
	}
}
