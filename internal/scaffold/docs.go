package scaffold

import (
	"strings"
	"text/template"
)

// The architecture document is the only catalog entry parameterized by
// project name and description; the remaining documentation is fixed text.

var architectureTmpl = template.Must(template.New("architecture").Parse(`# {{.Name}} Architecture

## Overview
{{.Description}}

## Project Structure

` + "```" + `
project/
├── src/
│   ├── components/          # React components
│   │   ├── common/         # Reusable UI components
│   │   ├── layout/         # Layout components (Header, Footer, etc.)
│   │   └── features/       # Feature-specific components
│   ├── hooks/              # Custom React hooks
│   ├── utils/              # Utility functions
│   ├── types/              # TypeScript type definitions
│   ├── styles/             # Global styles and themes
│   ├── services/           # API and external service integrations
│   ├── contexts/           # React Context providers
│   ├── App.tsx            # Main application component
│   └── index.tsx          # Application entry point
├── public/                 # Static assets
├── package.json           # Project dependencies
└── README.md             # Project documentation
` + "```" + `

## Component Architecture

### Component Hierarchy
- **App** (Root component)
  - **Layout** (Main layout wrapper)
    - **Header** (Navigation and branding)
    - **Main** (Content area)
    - **Footer** (Site information)

### Common Components
- **Button**: Reusable button with variants
- **Input**: Form input component
- **Card**: Content container
- **Modal**: Overlay dialog
- **Loading**: Loading indicator

## Data Flow

1. **Global State**: Managed via React Context (see STATE.md)
2. **Local State**: Component-specific state using useState/useReducer
3. **Side Effects**: Handled with useEffect and custom hooks
4. **API Calls**: Centralized in services layer

## Styling Strategy

- **CSS Modules**: For component-specific styles
- **Global Styles**: Theme variables and resets
- **Responsive Design**: Mobile-first approach
- See STYLING.md for detailed styling guidelines
`))

// architectureData feeds architectureTmpl.
type architectureData struct {
	Name        string
	Description string
}

// defaultDescription is used when the caller supplies no description.
const defaultDescription = "A modern React application built with TypeScript and best practices."

// renderArchitectureDoc renders ARCHITECTURE.md for the given project.
func renderArchitectureDoc(name, description string) (string, error) {
	if strings.TrimSpace(description) == "" {
		description = defaultDescription
	}
	var b strings.Builder
	if err := architectureTmpl.Execute(&b, architectureData{Name: name, Description: description}); err != nil {
		return "", err
	}
	return b.String(), nil
}

const componentsDoc = `# Component Documentation

## Component Hierarchy

` + "```" + `
App
├── Layout
│   ├── Header
│   │   ├── Navigation
│   │   └── Logo
│   ├── Main
│   │   └── [Page Components]
│   └── Footer
│       ├── Links
│       └── Copyright
└── Providers
    └── AppStateProvider
` + "```" + `

## Common Components

### Button
- **Location**: ` + "`src/components/common/Button.tsx`" + `
- **Purpose**: Reusable button component with multiple variants
- **Props**: variant, size, disabled, onClick, children

### Input
- **Location**: ` + "`src/components/common/Input.tsx`" + `
- **Purpose**: Form input component with validation support
- **Props**: type, placeholder, value, onChange, error

### Card
- **Location**: ` + "`src/components/common/Card.tsx`" + `
- **Purpose**: Content container with consistent styling
- **Props**: title, children, onClick, variant

### Modal
- **Location**: ` + "`src/components/common/Modal.tsx`" + `
- **Purpose**: Overlay dialog for focused interactions
- **Props**: isOpen, onClose, title, children, size

### Loading
- **Location**: ` + "`src/components/common/Loading.tsx`" + `
- **Purpose**: Loading state indicator
- **Props**: size, text

## Layout Components

### Header
- **Location**: ` + "`src/components/layout/Header.tsx`" + `
- **Purpose**: Application header with navigation
- **Contains**: Logo, Navigation menu, User actions

### Footer
- **Location**: ` + "`src/components/layout/Footer.tsx`" + `
- **Purpose**: Application footer with links and info

### Layout
- **Location**: ` + "`src/components/layout/Layout.tsx`" + `
- **Purpose**: Main layout wrapper
- **Contains**: Header, Main content area, Footer

## Component Guidelines

### Naming Conventions
- Components: PascalCase (e.g., ` + "`UserProfile`" + `)
- Props interfaces: ` + "`I{ComponentName}Props`" + `
- Files: Same as component name

### Props Documentation
Every component should have:
1. TypeScript interface for props
2. JSDoc comments for complex props
3. Default props where applicable
`

const stylingDoc = `# Styling Guidelines

## Global Theme

### Colors
` + "```css" + `
:root {
  /* Primary Colors */
  --primary-500: #3B82F6;
  --primary-600: #2563EB;

  /* Neutral Colors */
  --gray-50: #F9FAFB;
  --gray-500: #6B7280;
  --gray-900: #111827;

  /* Semantic Colors */
  --success: #10B981;
  --warning: #F59E0B;
  --error: #EF4444;
}
` + "```" + `

### Typography
` + "```css" + `
:root {
  --font-sans: -apple-system, BlinkMacSystemFont, 'Segoe UI', Roboto, sans-serif;
  --font-mono: 'SF Mono', Monaco, 'Courier New', monospace;

  --text-sm: 0.875rem;
  --text-base: 1rem;
  --text-lg: 1.125rem;
  --text-2xl: 1.5rem;
}
` + "```" + `

### Breakpoints
` + "```css" + `
/* Mobile First Approach */
@media (min-width: 640px) { /* Tablet */ }
@media (min-width: 1024px) { /* Desktop */ }
@media (min-width: 1280px) { /* Wide */ }
` + "```" + `

## Component Styling

Each component uses CSS Modules for scoped styling:

` + "```css" + `
/* Button.module.css */
.button {
  padding: var(--space-2) var(--space-4);
  border-radius: 0.375rem;
  transition: all 0.2s;
}

.primary {
  background-color: var(--primary-500);
  color: white;
}
` + "```" + `

## Styling Best Practices

1. **Use CSS Variables** — reference variables instead of hard-coded values
2. **Mobile-First Design** — start with mobile styles, use min-width queries
3. **Component Isolation** — CSS Modules, no global class names
4. **Accessibility** — sufficient contrast, focus styles, semantic HTML
`

const stateDoc = `# State Management

## Overview
This application uses a combination of local component state and React
Context for global state management.

## State Architecture

### Global State (Context)
` + "```" + `
AppStateContext
├── user (authentication and profile)
├── theme (light/dark mode)
├── notifications (system messages)
└── preferences (user settings)
` + "```" + `

### Local State
- Form inputs
- UI toggles (modals, dropdowns)
- Component-specific data

## Context Providers

### AppStateContext
**Location**: ` + "`src/contexts/AppStateContext.tsx`" + `

Reducer-backed global state with actions for user, theme, and
notifications. Access via the ` + "`useAppState`" + ` hook.

## State Management Patterns

### Form State
` + "```typescript" + `
const [formData, setFormData] = useState({ name: '', email: '' });
` + "```" + `

### Async State
` + "```typescript" + `
const [loading, setLoading] = useState(false);
const [error, setError] = useState<string | null>(null);
const [data, setData] = useState<Data | null>(null);
` + "```" + `

## State Best Practices

1. **State Colocation** — keep state as close to where it's used as possible
2. **Immutable Updates** — always use immutable updates, batch related changes
3. **Performance** — memoize expensive computations, split contexts
4. **Type Safety** — define interfaces for all state shapes
`
