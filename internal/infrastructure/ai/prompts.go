package ai

// Prompt templates for the analysis passes. Each instructs the model to
// answer in the JSON shape the normalizer expects; the normalizer still
// treats every field as untrusted.

const analyzeScopePrompt = `Analyze this project documentation and generate:
1. Scope of Work (bullet points)
2. Deliverables - MUST include:
  - item: string
  - unit: string
  - count: NUMBER (no text, only digits)
  - description: string

Return JSON with this structure:
{
  "scopeOfWork": string,
  "deliverables": [{
    "item": string,
    "unit": string,
    "count": number,
    "description": string
  }]
}

Project Documentation:
%s

My Requirements:
%s`

const reanalyzePrompt = `Analyze this project scope and deliverables with the provided feedback and regenerate:
1. Scope of Work (bullet points)
2. Deliverables - MUST include:
  - item: string
  - unit: string
  - count: NUMBER (no text, only digits)
  - description: string

Return JSON with this structure:
{
  "scopeOfWork": string,
  "deliverables": [{
    "item": string,
    "unit": string,
    "count": number,
    "description": string
  }]
}

Scope of Work:
%s

Deliverables:
%s

My Requirements:
%s

My Feedback:
%s`

const generatePrompt = `Using this scope of work and deliverables, generate the remaining proposal sections:
1. Executive summary
2. Requirements (list of strings)
3. Work breakdown: tasks with id, duration in whole DAYS (number), and dependencies (list of task ids)
4. Timeline: phases with startDate and endDate (YYYY-MM-DD) and tasks (list of task ids)

Return JSON with this structure:
{
  "executiveSummary": string,
  "requirements": [string],
  "workBreakdown": [{
    "id": string,
    "task": string,
    "duration": number,
    "dependencies": [string]
  }],
  "timeline": [{
    "phase": string,
    "startDate": string,
    "endDate": string,
    "tasks": [string]
  }]
}

Scope of Work:
%s

Deliverables:
%s

My Requirements:
%s

My Feedback:
%s`
