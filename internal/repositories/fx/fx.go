package fx

import (
	"github.com/bizbuddy/idea-pipeline/internal/repositories/account"
	"github.com/bizbuddy/idea-pipeline/internal/repositories/concept"
	"github.com/bizbuddy/idea-pipeline/internal/repositories/idea"
	"github.com/bizbuddy/idea-pipeline/internal/repositories/insight"
	"github.com/bizbuddy/idea-pipeline/internal/repositories/inspiration"
	"go.uber.org/fx"
)

var Module = fx.Options(
	idea.Module,
	account.Module,
	inspiration.Module,
	insight.Module,
	concept.Module,
)
