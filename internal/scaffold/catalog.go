package scaffold

// The catalog is the fixed, versioned list of everything Generate stamps
// into a fresh project. Entry paths are relative to the project sub-tree
// and must stay unique; generation is a pure function of (name,
// description), so the bodies below carry no timestamps or other
// call-dependent content.

// FileEntry pairs a project-relative path with its verbatim body.
type FileEntry struct {
	Path string
	Body string
}

// Directories created before any file is written.
var catalogDirs = []string{
	"src",
	"src/components",
	"src/components/common",
	"src/components/layout",
	"src/components/features",
	"src/hooks",
	"src/utils",
	"src/types",
	"src/styles",
	"src/services",
	"src/contexts",
	"public",
}

// cssModulePlaceholder returns the body of the style-module placeholder
// paired with a component. stem is the component file name without extension.
func cssModulePlaceholder(stem string) string {
	return "/* " + stem + ".module.css */\n" +
		"/* Component-specific styles for " + stem + " */\n" +
		"/* See STYLING.md for global theme variables */\n" +
		"\n" +
		".container {\n" +
		"  /* Component container styles */\n" +
		"}\n"
}

// Component placeholders. Each entry is written together with a paired
// .module.css placeholder derived from its path.
var catalogComponents = []FileEntry{
	{
		Path: "src/components/common/Button.tsx",
		Body: `// Button.tsx
// Purpose: Reusable button component used throughout the app
// Props: variant (primary|secondary|danger), size (sm|md|lg), disabled, onClick
// Used in: Header, Forms, Modals, CTAs
// Global styling: See STYLING.md for button theme variables

import React from 'react';
import styles from './Button.module.css';

interface IButtonProps {
  variant?: 'primary' | 'secondary' | 'danger';
  size?: 'sm' | 'md' | 'lg';
  disabled?: boolean;
  onClick?: () => void;
  children: React.ReactNode;
  type?: 'button' | 'submit' | 'reset';
}

export const Button: React.FC<IButtonProps> = ({
  variant = 'primary',
  size = 'md',
  disabled = false,
  onClick,
  children,
  type = 'button'
}) => {
  // TODO: Implement button component
  return (
    <button
      type={type}
      className={` + "`${styles.button} ${styles[variant]} ${styles[size]}`" + `}
      disabled={disabled}
      onClick={onClick}
    >
      {children}
    </button>
  );
};
`,
	},
	{
		Path: "src/components/common/Input.tsx",
		Body: `// Input.tsx
// Purpose: Form input component with validation support
// Props: type, placeholder, value, onChange, error, label, required
// Used in: Forms throughout the application
// Global styling: See STYLING.md for form input styles

import React from 'react';
import styles from './Input.module.css';

interface IInputProps {
  type?: string;
  placeholder?: string;
  value: string;
  onChange: (value: string) => void;
  error?: string;
  label?: string;
  required?: boolean;
  id?: string;
}

export const Input: React.FC<IInputProps> = ({
  type = 'text',
  placeholder,
  value,
  onChange,
  error,
  label,
  required = false,
  id
}) => {
  // TODO: Implement input component with validation
  return (
    <div className={styles.inputWrapper}>
      {label && (
        <label htmlFor={id} className={styles.label}>
          {label} {required && <span className={styles.required}>*</span>}
        </label>
      )}
      <input
        type={type}
        id={id}
        placeholder={placeholder}
        value={value}
        onChange={(e) => onChange(e.target.value)}
        className={` + "`${styles.input} ${error ? styles.error : ''}`" + `}
        aria-invalid={!!error}
      />
      {error && <span className={styles.errorMessage}>{error}</span>}
    </div>
  );
};
`,
	},
	{
		Path: "src/components/common/Card.tsx",
		Body: `// Card.tsx
// Purpose: Content container with consistent styling and shadows
// Props: title, children, onClick, variant
// Used in: Content sections, Feature displays, Lists
// Global styling: See STYLING.md for card elevation and spacing

import React from 'react';
import styles from './Card.module.css';

interface ICardProps {
  title?: string;
  children: React.ReactNode;
  onClick?: () => void;
  variant?: 'default' | 'bordered' | 'elevated';
}

export const Card: React.FC<ICardProps> = ({
  title,
  children,
  onClick,
  variant = 'default'
}) => {
  // TODO: Implement card component
  return (
    <div
      className={` + "`${styles.card} ${styles[variant]}`" + `}
      onClick={onClick}
      role={onClick ? 'button' : undefined}
    >
      {title && <h3 className={styles.title}>{title}</h3>}
      <div className={styles.content}>{children}</div>
    </div>
  );
};
`,
	},
	{
		Path: "src/components/common/Modal.tsx",
		Body: `// Modal.tsx
// Purpose: Overlay dialog for focused user interactions
// Props: isOpen, onClose, title, children, size
// Used in: Confirmations, Forms, Detail views, Alerts
// Global styling: See STYLING.md for overlay and modal styles

import React, { useEffect } from 'react';
import { createPortal } from 'react-dom';
import styles from './Modal.module.css';

interface IModalProps {
  isOpen: boolean;
  onClose: () => void;
  title: string;
  children: React.ReactNode;
  size?: 'sm' | 'md' | 'lg';
}

export const Modal: React.FC<IModalProps> = ({
  isOpen,
  onClose,
  title,
  children,
  size = 'md'
}) => {
  // TODO: Implement modal with portal, focus trap, and escape key handling
  useEffect(() => {
    const handleEscape = (e: KeyboardEvent) => {
      if (e.key === 'Escape') onClose();
    };
    if (isOpen) document.addEventListener('keydown', handleEscape);
    return () => document.removeEventListener('keydown', handleEscape);
  }, [isOpen, onClose]);

  if (!isOpen) return null;

  return createPortal(
    <div className={styles.overlay} onClick={onClose}>
      <div
        className={` + "`${styles.modal} ${styles[size]}`" + `}
        onClick={(e) => e.stopPropagation()}
        role="dialog"
        aria-modal="true"
      >
        <div className={styles.header}>
          <h2 className={styles.title}>{title}</h2>
          <button className={styles.closeButton} onClick={onClose} aria-label="Close modal">
            ×
          </button>
        </div>
        <div className={styles.content}>{children}</div>
      </div>
    </div>,
    document.body
  );
};
`,
	},
	{
		Path: "src/components/common/Loading.tsx",
		Body: `// Loading.tsx
// Purpose: Loading state indicator for async operations
// Props: size (sm|md|lg), text
// Used in: Data fetching, Form submissions, Route transitions
// Global styling: See STYLING.md for animation styles

import React from 'react';
import styles from './Loading.module.css';

interface ILoadingProps {
  size?: 'sm' | 'md' | 'lg';
  text?: string;
}

export const Loading: React.FC<ILoadingProps> = ({ size = 'md', text = 'Loading...' }) => {
  // TODO: Implement loading spinner
  return (
    <div className={styles.container}>
      <div className={` + "`${styles.spinner} ${styles[size]}`" + `} role="status" aria-live="polite" />
      {text && <p className={styles.text}>{text}</p>}
    </div>
  );
};
`,
	},
	{
		Path: "src/components/layout/Layout.tsx",
		Body: `// Layout.tsx
// Purpose: Main layout wrapper providing consistent page structure
// Props: children
// Used in: App root to wrap all pages
// Contains: Header, Main content area, Footer
// Global styling: See STYLING.md for layout grid and spacing

import React from 'react';
import { Header } from './Header';
import { Footer } from './Footer';
import styles from './Layout.module.css';

interface ILayoutProps {
  children: React.ReactNode;
}

export const Layout: React.FC<ILayoutProps> = ({ children }) => {
  // TODO: Implement layout with skip navigation, main landmark
  return (
    <div className={styles.layout}>
      <Header />
      <main id="main-content" className={styles.main}>
        {children}
      </main>
      <Footer />
    </div>
  );
};
`,
	},
	{
		Path: "src/components/layout/Header.tsx",
		Body: `// Header.tsx
// Purpose: Application header with navigation and branding
// Contains: Logo, Navigation menu, User actions
// State: Current route (from router), User auth status (from context)
// Global styling: See STYLING.md for header theme

import React from 'react';
import styles from './Header.module.css';

export const Header: React.FC = () => {
  // TODO: Implement responsive navigation, mobile menu
  return (
    <header className={styles.header}>
      <div className={styles.container}>
        <div className={styles.logo}>{/* Logo component */}</div>
        <nav className={styles.nav} aria-label="Main navigation">
          {/* Navigation items */}
        </nav>
        <div className={styles.actions}>{/* User actions, theme toggle */}</div>
      </div>
    </header>
  );
};
`,
	},
	{
		Path: "src/components/layout/Footer.tsx",
		Body: `// Footer.tsx
// Purpose: Application footer with links and company information
// Contains: Links, Copyright, Social media icons
// Global styling: See STYLING.md for footer styles

import React from 'react';
import styles from './Footer.module.css';

export const Footer: React.FC = () => {
  const currentYear = new Date().getFullYear();

  // TODO: Implement footer with links, social media
  return (
    <footer className={styles.footer}>
      <div className={styles.container}>
        <div className={styles.links}>{/* Footer links */}</div>
        <div className={styles.copyright}>
          © {currentYear} Your Company. All rights reserved.
        </div>
      </div>
    </footer>
  );
};
`,
	},
}

// Utility placeholders.
var catalogUtils = []FileEntry{
	{
		Path: "src/utils/helpers.ts",
		Body: `// helpers.ts
// Purpose: General utility functions used throughout the app
// Used in: Components, services, and other utilities

/**
 * Format a date to a readable string
 */
export const formatDate = (date: Date): string => {
  // TODO: Implement date formatting
  return date.toLocaleDateString();
};

/**
 * Debounce a function call
 */
export const debounce = <T extends (...args: any[]) => any>(
  func: T,
  delay: number
): ((...args: Parameters<T>) => void) => {
  let timeoutId: NodeJS.Timeout;

  return (...args: Parameters<T>) => {
    clearTimeout(timeoutId);
    timeoutId = setTimeout(() => func(...args), delay);
  };
};

/**
 * Capitalize first letter of a string
 */
export const capitalize = (str: string): string => {
  return str.charAt(0).toUpperCase() + str.slice(1);
};
`,
	},
	{
		Path: "src/utils/validators.ts",
		Body: `// validators.ts
// Purpose: Form validation functions
// Used in: Form components, Input validation

/**
 * Validate email format
 */
export const isValidEmail = (email: string): boolean => {
  const emailRegex = /^[^\s@]+@[^\s@]+\.[^\s@]+$/;
  return emailRegex.test(email);
};

/**
 * Validate required field
 */
export const isRequired = (value: any): boolean => {
  return value !== null && value !== undefined && value !== '';
};

/**
 * Validate minimum length
 */
export const minLength = (min: number) => (value: string): boolean => {
  return value.length >= min;
};
`,
	},
}

// Context placeholders.
var catalogContexts = []FileEntry{
	{
		Path: "src/contexts/AppStateContext.tsx",
		Body: `// AppStateContext.tsx
// Purpose: Global application state management
// Provides: User state, theme, notifications, preferences
// Used in: Throughout the app for global state access
// See STATE.md for state management patterns

import React, { createContext, useContext, useReducer, ReactNode } from 'react';
import { User, Notification, UserPreferences } from '../types';

interface AppState {
  user: User | null;
  theme: 'light' | 'dark';
  notifications: Notification[];
  preferences: UserPreferences;
}

type AppStateAction =
  | { type: 'SET_USER'; payload: User | null }
  | { type: 'TOGGLE_THEME' }
  | { type: 'ADD_NOTIFICATION'; payload: Notification }
  | { type: 'REMOVE_NOTIFICATION'; payload: string };

const initialState: AppState = {
  user: null,
  theme: 'light',
  notifications: [],
  preferences: { language: 'en', timezone: 'UTC' }
};

const appStateReducer = (state: AppState, action: AppStateAction): AppState => {
  switch (action.type) {
    case 'SET_USER':
      return { ...state, user: action.payload };
    case 'TOGGLE_THEME':
      return { ...state, theme: state.theme === 'light' ? 'dark' : 'light' };
    case 'ADD_NOTIFICATION':
      return { ...state, notifications: [...state.notifications, action.payload] };
    case 'REMOVE_NOTIFICATION':
      return {
        ...state,
        notifications: state.notifications.filter(n => n.id !== action.payload)
      };
    default:
      return state;
  }
};

const AppStateContext = createContext<
  { state: AppState; dispatch: React.Dispatch<AppStateAction> } | undefined
>(undefined);

export const AppStateProvider: React.FC<{ children: ReactNode }> = ({ children }) => {
  const [state, dispatch] = useReducer(appStateReducer, initialState);
  return (
    <AppStateContext.Provider value={{ state, dispatch }}>
      {children}
    </AppStateContext.Provider>
  );
};

export const useAppState = () => {
  const context = useContext(AppStateContext);
  if (!context) {
    throw new Error('useAppState must be used within AppStateProvider');
  }
  return context;
};
`,
	},
}

// Type definition placeholders.
var catalogTypes = []FileEntry{
	{
		Path: "src/types/index.ts",
		Body: `// index.ts
// Purpose: Central type definitions used throughout the application
// Used in: Components, contexts, services

export interface User {
  id: string;
  email: string;
  firstName: string;
  lastName: string;
  role: 'admin' | 'user';
}

export interface Notification {
  id: string;
  type: 'info' | 'success' | 'warning' | 'error';
  title: string;
  message?: string;
  read: boolean;
}

export interface UserPreferences {
  language: string;
  timezone: string;
}

export interface ApiResponse<T> {
  data: T;
  error?: string;
  status: number;
}
`,
	},
}

// Global style placeholders.
var catalogStyles = []FileEntry{
	{
		Path: "src/styles/globals.css",
		Body: `/* globals.css */
/* Global styles and CSS reset */
/* See STYLING.md for theme variables and guidelines */

:root {
  /* Colors */
  --primary-500: #3B82F6;
  --primary-600: #2563EB;
  --gray-50: #F9FAFB;
  --gray-900: #111827;

  /* Typography */
  --font-sans: -apple-system, BlinkMacSystemFont, 'Segoe UI', Roboto, sans-serif;

  /* Spacing */
  --space-4: 1rem;
  --space-8: 2rem;
}

* {
  box-sizing: border-box;
  margin: 0;
  padding: 0;
}

body {
  font-family: var(--font-sans);
  color: var(--gray-900);
  background-color: var(--gray-50);
  line-height: 1.5;
}

:focus-visible {
  outline: 2px solid var(--primary-500);
  outline-offset: 2px;
}
`,
	},
}

// componentsReadme documents the components directory; written last.
const componentsReadme = `# Components Directory

This directory contains all React components organized by type and feature.

## Structure

` + "```" + `
components/
├── common/          # Reusable UI components
├── layout/          # Layout components
└── features/        # Feature-specific components
` + "```" + `

## Component Guidelines

### Creating a New Component

1. **File Structure**
   ` + "```" + `
   ComponentName/
   ├── ComponentName.tsx
   ├── ComponentName.module.css
   ├── ComponentName.test.tsx
   └── index.ts
   ` + "```" + `

2. **Documentation**
   - Add inline comments for complex logic
   - Document all props in the interface
   - Update COMPONENTS.md when adding new components

## Best Practices

1. **Single Responsibility**: Each component should do one thing well
2. **Props Documentation**: Use TypeScript interfaces with JSDoc comments
3. **Accessibility**: Include ARIA labels, roles, and keyboard navigation
4. **Testing**: Write tests for all interactive components

## Common Components

See individual component files for detailed documentation:
- ` + "`Button`" + ` - Versatile button with multiple variants
- ` + "`Input`" + ` - Form input with validation
- ` + "`Card`" + ` - Content container
- ` + "`Modal`" + ` - Overlay dialog
- ` + "`Loading`" + ` - Loading states
`
